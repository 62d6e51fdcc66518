package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type Tag struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

type TagPayload struct {
	Name string `json:"name"`
}

type TagDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (t Tag) Dto() TagDto {
	return TagDto{ID: t.ID, Name: t.Name}
}

// Ref ссылается на сущность по id или по имени.
// В JSON это число (id), строка (имя) или объект {"id"} / {"name"}.
type Ref struct {
	ID   *int64
	Name string
}

func RefByID(id int64) Ref {
	return Ref{ID: &id}
}

func RefByName(name string) Ref {
	return Ref{Name: name}
}

// IsEmpty - ни id, ни непустого имени
func (r Ref) IsEmpty() bool {
	return r.ID == nil && strings.TrimSpace(r.Name) == ""
}

func (r Ref) String() string {
	if r.ID != nil {
		return fmt.Sprintf("#%d", *r.ID)
	}
	return fmt.Sprintf("%q", r.Name)
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID != nil {
		return json.Marshal(*r.ID)
	}
	return json.Marshal(r.Name)
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty reference")
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*r = Ref{Name: name}
		return nil
	case '{':
		var obj struct {
			ID   *int64  `json:"id"`
			Name *string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		switch {
		case obj.ID != nil:
			*r = Ref{ID: obj.ID}
		case obj.Name != nil:
			*r = Ref{Name: *obj.Name}
		default:
			return fmt.Errorf("reference object must contain id or name")
		}
		return nil
	default:
		var id int64
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("reference must be an integer id or a name: %w", err)
		}
		*r = Ref{ID: &id}
		return nil
	}
}
