package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type serviceDoc struct {
	Services []ServiceEntry `bson:"services"`
}

func decodeServices(t *testing.T, services bson.A) []ServiceEntry {
	t.Helper()
	raw, err := bson.Marshal(bson.M{"services": services})
	require.NoError(t, err)
	var doc serviceDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc.Services
}

func TestServiceEntryDecodesCanonicalDocument(t *testing.T) {
	services := decodeServices(t, bson.A{
		bson.M{"name": "Vopsit", "price": 150.0, "imageUrl": "https://img.example/vopsit.jpg"},
	})

	require.Len(t, services, 1)
	assert.Equal(t, "Vopsit", services[0].Name)
	assert.Equal(t, 150.0, services[0].Price)
	assert.Equal(t, "https://img.example/vopsit.jpg", services[0].ImageURL)
}

func TestServiceEntryDecodesIntegerPrice(t *testing.T) {
	services := decodeServices(t, bson.A{
		bson.M{"name": "Tuns", "price": int32(80)},
	})

	require.Len(t, services, 1)
	assert.Equal(t, 80.0, services[0].Price)
}

func TestServiceEntryDecodesBareString(t *testing.T) {
	services := decodeServices(t, bson.A{"  Tuns "})

	require.Len(t, services, 1)
	assert.Equal(t, "Tuns", services[0].Name)
	assert.Zero(t, services[0].Price)
}

func TestServiceEntryDecodesNumericKeyedCharMap(t *testing.T) {
	services := decodeServices(t, bson.A{
		bson.M{"0": "T", "1": "u", "2": "n", "3": "s", "_id": "64ffab"},
	})

	require.Len(t, services, 1)
	assert.Equal(t, "Tuns", services[0].Name)
}

func TestServiceEntryDecodesUnknownShapeToEmpty(t *testing.T) {
	services := decodeServices(t, bson.A{int64(42)})

	require.Len(t, services, 1)
	assert.Empty(t, services[0].Name)
}

func TestIsGenericService(t *testing.T) {
	for _, name := range []string{"", "Consultație", "consultatie", "Any Service", "  CONSULTAȚIE  "} {
		assert.True(t, IsGenericService(name), name)
	}
	assert.False(t, IsGenericService("Tuns"))
}

func TestHasService(t *testing.T) {
	services := []ServiceEntry{{Name: "Tuns"}, {Name: " Vopsit "}}

	assert.True(t, HasService(services, "tuns"))
	assert.True(t, HasService(services, "VOPSIT"))
	assert.False(t, HasService(services, "Manichiură"))
}
