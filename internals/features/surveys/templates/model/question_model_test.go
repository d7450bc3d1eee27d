package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestValidateShape_ChoiceNeedsOptions(t *testing.T) {
	q := QuestionModel{
		QuestionText: "Pilih salah satu",
		QuestionType: QuestionTypeSingleChoice,
	}
	assert.Error(t, q.ValidateShape())

	q.QuestionOptions = datatypes.JSON([]byte(`["Bersih","Kotor"]`))
	assert.NoError(t, q.ValidateShape())
}

func TestValidateShape_NonChoiceRejectsOptions(t *testing.T) {
	q := QuestionModel{
		QuestionText:    "Berapa lama antri?",
		QuestionType:    QuestionTypeNumber,
		QuestionOptions: datatypes.JSON([]byte(`["a","b"]`)),
	}
	assert.Error(t, q.ValidateShape())
}

func TestValidateShape_UnknownTypeAndNegativeWeight(t *testing.T) {
	q := QuestionModel{QuestionText: "x", QuestionType: "slider"}
	assert.Error(t, q.ValidateShape())

	q = QuestionModel{QuestionText: "x", QuestionType: QuestionTypeYesNo, QuestionWeight: -1}
	assert.Error(t, q.ValidateShape())
}

func TestOptionLabels(t *testing.T) {
	q := QuestionModel{QuestionOptions: datatypes.JSON([]byte(`["A","B","C"]`))}
	labels, err := q.OptionLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, labels)

	q = QuestionModel{}
	labels, err = q.OptionLabels()
	require.NoError(t, err)
	assert.Nil(t, labels)
}
