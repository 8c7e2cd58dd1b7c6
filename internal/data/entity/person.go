package entity

type Person struct {
	Base
	Metadata PersonMetadata `json:"metadata"`
}

type PersonMetadata struct {
	FullName          string    `json:"full_name"`
	Biography         string    `json:"biography,omitempty"`
	ProfilePhoto      *Image    `json:"profile_photo,omitempty"`
	BirthDate         string    `json:"birth_date,omitempty"`
	BirthPlace        string    `json:"birth_place,omitempty"`
	IMDbPersonID      string    `json:"imdb_person_id,omitempty"`
	PrimaryProfession *KeyValue `json:"primary_profession,omitempty"`
}

func (p *Person) SetBase(b Base) { p.Base = b }
func (p *Person) MetadataTarget() any { return &p.Metadata }

// Name falls back to the object title when full_name is empty.
func (p *Person) Name() string {
	if p.Metadata.FullName != "" {
		return p.Metadata.FullName
	}
	return p.Title
}
