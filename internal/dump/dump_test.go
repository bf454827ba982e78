package dump

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const testDocs = `[
	{
		"NativeClass": "/Script/CoreUObject.Class'/Script/FactoryGame.FGItemDescriptor'",
		"Classes": [
			{"ClassName": "Desc_IronIngot_C", "mDisplayName": "Iron Ingot", "mEnergyValue": "0.000000"},
			{"ClassName": "Desc_CopperIngot_C", "mDisplayName": "Copper Ingot", "mEnergyValue": "0.000000"}
		]
	},
	{
		"NativeClass": "/Script/CoreUObject.Class'/Script/FactoryGame.FGRecipe'",
		"Classes": [
			{"ClassName": "Recipe_IngotIron_C", "mDisplayName": "Iron Ingot"}
		]
	}
]`

func TestParseGroups(t *testing.T) {
	groups, err := Parse([]byte(testDocs))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "/Script/CoreUObject.Class'/Script/FactoryGame.FGItemDescriptor'", groups[0].NativeClass)
	require.Len(t, groups[0].Classes, 2)
	assert.Equal(t, "Iron Ingot", groups[0].Classes[0].Str("mDisplayName"))
	assert.Equal(t, groups[0].NativeClass, groups[0].Classes[0].NativeClass,
		"records carry the native-class tag they were loaded under")
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"NativeClass": "x"}`))
	assert.Error(t, err, "top level must be an array")
}

func TestLoadDecodesUTF16(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, encoder)
	_, err := w.Write([]byte(testDocs))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "Docs.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	groups, err := Load(path)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Recipe_IngotIron_C", groups[1].Classes[0].Str("ClassName"))
}

func TestFilterFlattensMatchingGroups(t *testing.T) {
	groups, err := Parse([]byte(testDocs))
	require.NoError(t, err)

	records, err := Filter(groups, []string{"/Script/CoreUObject.Class'/Script/FactoryGame.FGItemDescriptor'"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Desc_IronIngot_C", records[0].Str("ClassName"))
	assert.Equal(t, "Desc_CopperIngot_C", records[1].Str("ClassName"))
}

func TestFilterEmptySelection(t *testing.T) {
	groups, err := Parse([]byte(testDocs))
	require.NoError(t, err)

	_, err = Filter(groups, []string{"/Script/CoreUObject.Class'/Script/FactoryGame.FGSchematic'"})
	var empty *EmptySelectionError
	require.ErrorAs(t, err, &empty)
	assert.Contains(t, empty.Error(), "FGSchematic")
}

func TestRecordAccessors(t *testing.T) {
	rec := NewClassRecord("tag", gjson.Parse(`{
		"mDisplayName": "Coal",
		"mEnergyValue": "300.000000",
		"mFuel": [{"mFuelClass": "Desc_Coal_C"}, {"mFuelClass": "Desc_CompactedCoal_C"}]
	}`))

	assert.Equal(t, "Coal", rec.Str("mDisplayName"))
	assert.Equal(t, 300.0, rec.Float("mEnergyValue"))
	assert.True(t, rec.Has("mEnergyValue"))
	assert.False(t, rec.Has("mForm"))
	assert.Equal(t, "", rec.Str("mForm"))

	fuels := rec.Records("mFuel")
	require.Len(t, fuels, 2)
	assert.Equal(t, "Desc_CompactedCoal_C", fuels[1].Str("mFuelClass"))
	assert.Equal(t, "tag", fuels[0].NativeClass)
}
