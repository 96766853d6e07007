package shear

import (
	"encoding/json"
	"os"
)

// LoadFromFile loads a member definition from a JSON file.
// Fields missing from the file keep the defaults of NewMember.
func LoadFromFile(filepath string) (*Member, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	member := NewMember(0, 0, 0)
	if err := json.Unmarshal(data, member); err != nil {
		return nil, err
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	return member, nil
}
