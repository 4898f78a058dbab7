package entity

import "encoding/json"

// UserRef is a reference to a user that the backend returns either as a bare
// id string or as a populated object, depending on the endpoint. Both forms
// decode into the same struct.
type UserRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// UnmarshalJSON accepts either "64ab..." or {"_id": "64ab...", ...}.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id

		return nil
	}

	type plain UserRef

	return json.Unmarshal(data, (*plain)(r))
}

// ProductRef is a product reference, populated on moderation listings.
type ProductRef struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON accepts either a bare id string or a populated object.
func (r *ProductRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id

		return nil
	}

	type plain ProductRef

	return json.Unmarshal(data, (*plain)(r))
}
