package model_test

import (
	"testing"

	"intake/internal/domains/consultation/model"

	"github.com/stretchr/testify/assert"
)

func TestAgeBand_IsValid(t *testing.T) {
	for _, band := range model.AgeBands {
		assert.True(t, band.IsValid(), band.String())
	}

	assert.True(t, model.AgeBandUndisclosed.IsValid())
	assert.False(t, model.AgeBand("AGE_40_49").IsValid())
	assert.False(t, model.AgeBand("").IsValid())
}

func TestAgeBand_Rank(t *testing.T) {
	assert.Equal(t, 0, model.AgeBandUnder59.Rank())
	assert.Equal(t, len(model.AgeBands)-1, model.AgeBand100Plus.Rank())
	assert.Equal(t, -1, model.AgeBandUndisclosed.Rank())
	assert.Equal(t, -1, model.AgeBand("nope").Rank())
	assert.Less(t, model.AgeBand60to64.Rank(), model.AgeBand65to69.Rank())
}

func TestParseAgeBand(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   model.AgeBand
		wantOK bool
	}{
		{name: "known band", raw: "AGE_70_74", want: model.AgeBand70to74, wantOK: true},
		{name: "surrounding spaces", raw: "  AGE_100_PLUS ", want: model.AgeBand100Plus, wantOK: true},
		{name: "sentinel", raw: "NO_ANSWER", want: model.AgeBandUndisclosed, wantOK: true},
		{name: "blank", raw: "", want: model.AgeBandUndisclosed, wantOK: false},
		{name: "unknown value", raw: "AGE_30_39", want: model.AgeBandUndisclosed, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.ParseAgeBand(tt.raw)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestTargetType_IsValid(t *testing.T) {
	valid := []model.TargetType{
		model.TargetSelf,
		model.TargetSpouse,
		model.TargetParent,
		model.TargetGrandparent,
		model.TargetChild,
		model.TargetOtherRelative,
	}

	for _, target := range valid {
		assert.True(t, target.IsValid(), target.String())
	}

	assert.False(t, model.TargetType("FRIEND").IsValid())
	assert.False(t, model.TargetType("self").IsValid())
}
