package uvmodel

import (
	"encoding/json"
	"fmt"
)

// SkinType is the Fitzpatrick skin phototype. Each type carries the number
// of minutes unprotected skin takes to start burning under reference UV.
type SkinType int

const (
	SkinTypeI SkinType = iota + 1
	SkinTypeII
	SkinTypeIII
	SkinTypeIV
	SkinTypeV
	SkinTypeVI
)

var skinTypeIDs = map[SkinType]string{
	SkinTypeI:   "type_i",
	SkinTypeII:  "type_ii",
	SkinTypeIII: "type_iii",
	SkinTypeIV:  "type_iv",
	SkinTypeV:   "type_v",
	SkinTypeVI:  "type_vi",
}

var skinTypeLabels = map[SkinType]string{
	SkinTypeI:   "Type I (Very fair)",
	SkinTypeII:  "Type II (Fair)",
	SkinTypeIII: "Type III (Medium)",
	SkinTypeIV:  "Type IV (Olive)",
	SkinTypeV:   "Type V (Brown)",
	SkinTypeVI:  "Type VI (Dark brown)",
}

// BaseBurnMinutes returns the unprotected burn time associated with the
// skin type.
func (s SkinType) BaseBurnMinutes() int {
	if s < SkinTypeI || s > SkinTypeVI {
		return 0
	}
	return int(s) * 5
}

// String returns the wire identifier, e.g. "type_ii".
func (s SkinType) String() string {
	if id, ok := skinTypeIDs[s]; ok {
		return id
	}
	return fmt.Sprintf("skin_type(%d)", int(s))
}

// Label returns the human-readable name, e.g. "Type II (Fair)".
func (s SkinType) Label() string {
	return skinTypeLabels[s]
}

func (s SkinType) Valid() bool {
	return s >= SkinTypeI && s <= SkinTypeVI
}

// ParseSkinType accepts a wire identifier such as "type_iii".
func ParseSkinType(id string) (SkinType, error) {
	for st, known := range skinTypeIDs {
		if known == id {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown skin type %q", id)
}

func (s SkinType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SkinType) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	st, err := ParseSkinType(id)
	if err != nil {
		return err
	}
	*s = st
	return nil
}
