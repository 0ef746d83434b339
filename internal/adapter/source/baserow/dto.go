package baserow

import (
	"encoding/json"
	"fmt"
)

// RowsResponse is the list-rows payload of the Baserow database API
type RowsResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Row   `json:"results"`
}

// Doa table field names. encoding/json ignores struct tags containing an
// apostrophe, so Row decodes these keys by lookup.
const (
	FieldTitle       = "Nama Do'a"
	FieldBody        = "Kalimat Do'a"
	FieldTranslation = "Arti Do'a"
)

// Row is a doa row fetched with user_field_names=true
type Row struct {
	ID          int
	Title       string
	Body        string
	Translation string
}

// UnmarshalJSON decodes a row keyed by the table's user field names.
// Missing or null fields stay empty.
func (r *Row) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var row Row
	targets := []struct {
		key  string
		dest any
	}{
		{"id", &row.ID},
		{FieldTitle, &row.Title},
		{FieldBody, &row.Body},
		{FieldTranslation, &row.Translation},
	}
	for _, t := range targets {
		raw, ok := fields[t.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, t.dest); err != nil {
			return fmt.Errorf("field %q: %w", t.key, err)
		}
	}

	*r = row
	return nil
}

// CreativeRow is a house-ad row
type CreativeRow struct {
	ID   int    `json:"id"`
	Text string `json:"Teks"`
	Size string `json:"Ukuran"` // banner size name; empty fits any size
	URL  string `json:"Tautan"`
}

// CreativesResponse is the list-rows payload of the creatives table
type CreativesResponse struct {
	Results []CreativeRow `json:"results"`
}
