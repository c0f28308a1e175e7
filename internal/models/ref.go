package models

import "encoding/json"

// Ref is an owning-document reference. The upstream returns these either as
// a bare id string or as a populated {_id,name} object depending on the
// route, so decoding accepts both shapes.
type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		r.Name = ""
		return nil
	}

	type refAlias Ref
	var full refAlias
	if err := json.Unmarshal(b, &full); err != nil {
		return err
	}
	*r = Ref(full)
	return nil
}
