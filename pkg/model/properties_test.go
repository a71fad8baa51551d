package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties_ValueScan(t *testing.T) {
	p := Properties{"qualifiedName": "Glossary:Sales", "keyPattern": 2}
	v, err := p.Value()
	require.NoError(t, err)

	var scanned Properties
	require.NoError(t, scanned.Scan([]byte(v.(string))))
	assert.Equal(t, "Glossary:Sales", scanned.String("qualifiedName"))
	n, ok := scanned.Int("keyPattern")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
	assert.Error(t, scanned.Scan(42))
}

func TestProperties_Merge(t *testing.T) {
	base := Properties{"displayName": "Sales", "description": "old", "language": "en"}
	merged := base.Merge(Properties{"description": "new", "language": "", "usage": nil})

	assert.Equal(t, "Sales", merged.String("displayName"))
	assert.Equal(t, "new", merged.String("description"))
	assert.Equal(t, "en", merged.String("language"))
	assert.Equal(t, "old", base.String("description"), "merge must not modify the receiver")
}

func TestProperties_Accessors(t *testing.T) {
	p := Properties{
		"additionalProperties": map[string]any{"owner": "sales", "count": 3},
		"zones":                []any{"quarantine", 7, "data-lake"},
	}
	assert.Equal(t, map[string]string{"owner": "sales", "count": "3"}, p.StringMap("additionalProperties"))
	assert.Equal(t, []string{"quarantine", "data-lake"}, p.Strings("zones"))
	assert.Nil(t, p.StringMap("missing"))
	_, ok := p.Int("missing")
	assert.False(t, ok)
}

func TestEntity_IsEffective(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := &Entity{EffectiveFrom: &from, EffectiveTo: &to}

	assert.True(t, e.IsEffective(time.Time{}))
	assert.True(t, e.IsEffective(from))
	assert.True(t, e.IsEffective(from.Add(24*time.Hour)))
	assert.False(t, e.IsEffective(from.Add(-time.Second)))
	assert.False(t, e.IsEffective(to))
}

func TestRelationship_OtherEnd(t *testing.T) {
	r := &Relationship{End1GUID: "a", End2GUID: "b"}
	assert.Equal(t, "b", r.OtherEnd("a"))
	assert.Equal(t, "a", r.OtherEnd("b"))
}
