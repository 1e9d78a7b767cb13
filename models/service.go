package models

import (
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ServiceEntry is the canonical shape of a salon or worker service.
// Legacy records may store a service as a bare string, or as a corrupted
// document whose keys are numeric indexes into the original name ("0": "T",
// "1": "u", ...). Decoding normalizes all three shapes to this struct; new
// writes only ever produce the canonical shape.
type ServiceEntry struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	ImageURL string  `bson:"imageUrl" json:"imageUrl"`
}

// UnmarshalBSONValue accepts the canonical document, a bare string, or a
// numeric-keyed character map left behind by prior data corruption.
func (s *ServiceEntry) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeString:
		var name string
		if err := bson.UnmarshalValue(t, data, &name); err != nil {
			return err
		}
		s.Name = strings.TrimSpace(name)
		return nil
	case bson.TypeEmbeddedDocument:
		var raw bson.M
		if err := bson.UnmarshalValue(t, data, &raw); err != nil {
			return err
		}
		*s = serviceFromDocument(raw)
		return nil
	default:
		// Unknown encodings decode to an empty entry rather than failing the
		// whole worker document.
		*s = ServiceEntry{}
		return nil
	}
}

func serviceFromDocument(raw bson.M) ServiceEntry {
	var entry ServiceEntry
	if name, ok := raw["name"].(string); ok && name != "" {
		entry.Name = strings.TrimSpace(name)
		switch p := raw["price"].(type) {
		case float64:
			entry.Price = p
		case int32:
			entry.Price = float64(p)
		case int64:
			entry.Price = float64(p)
		}
		if img, ok := raw["imageUrl"].(string); ok {
			entry.ImageURL = img
		}
		return entry
	}

	// Numeric-keyed character map: reassemble the name from the sorted indexes.
	type indexedChar struct {
		index int
		value string
	}
	var chars []indexedChar
	for key, val := range raw {
		if key == "_id" {
			continue
		}
		idx, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		ch, ok := val.(string)
		if !ok {
			continue
		}
		chars = append(chars, indexedChar{index: idx, value: ch})
	}
	if len(chars) == 0 {
		return entry
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i].index < chars[j].index })
	var sb strings.Builder
	for _, c := range chars {
		sb.WriteString(c.value)
	}
	entry.Name = strings.TrimSpace(sb.String())
	return entry
}

// genericServiceNames are placeholder requests that should never trigger a
// service-mismatch warning.
var genericServiceNames = map[string]struct{}{
	"":            {},
	"consultație": {},
	"consultatie": {},
	"any service": {},
}

// IsGenericService reports whether the requested service is a recognized
// placeholder rather than a concrete catalog entry.
func IsGenericService(name string) bool {
	_, ok := genericServiceNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// HasService reports whether any entry matches the requested service name,
// case-insensitively and ignoring surrounding whitespace.
func HasService(services []ServiceEntry, requested string) bool {
	want := strings.ToLower(strings.TrimSpace(requested))
	for _, svc := range services {
		if strings.ToLower(strings.TrimSpace(svc.Name)) == want {
			return true
		}
	}
	return false
}
