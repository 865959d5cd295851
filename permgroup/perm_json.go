package permgroup

import "encoding/json"

// MarshalJSON encodes the images of p.
//
// Permutations of degree at most 256 are packed into a
// byte string, which encoding/json stores as base64.
func (p Perm) MarshalJSON() ([]byte, error) {
	if len(p) > 256 {
		return json.Marshal([]int(p))
	} else {
		mapping8 := make([]uint8, len(p))
		for i, x := range p {
			mapping8[i] = uint8(x)
		}
		return json.Marshal(mapping8)
	}
}

// UnmarshalJSON decodes either encoding produced by
// MarshalJSON, or a plain array of images, and checks that
// the result is a bijection.
func (p *Perm) UnmarshalJSON(data []byte) error {
	var images []int

	var obj []byte
	if json.Unmarshal(data, &obj) == nil {
		images = make([]int, len(obj))
		for i, x := range obj {
			images[i] = int(x)
		}
	} else if err := json.Unmarshal(data, &images); err != nil {
		return err
	}

	perm, err := NewPerm(images)
	if err != nil {
		return err
	}
	*p = perm
	return nil
}
