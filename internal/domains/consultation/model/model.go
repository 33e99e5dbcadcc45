package model

import (
	"strings"
)

const (
	EntityName = "consultation"
)

// TargetType is who the consultation is about.
type TargetType string

const (
	TargetSelf          TargetType = "SELF"
	TargetSpouse        TargetType = "SPOUSE"
	TargetParent        TargetType = "PARENT"
	TargetGrandparent   TargetType = "GRANDPARENT"
	TargetChild         TargetType = "CHILD"
	TargetOtherRelative TargetType = "OTHER_RELATIVE"
)

var targetTypes = []TargetType{
	TargetSelf,
	TargetSpouse,
	TargetParent,
	TargetGrandparent,
	TargetChild,
	TargetOtherRelative,
}

func (t TargetType) IsValid() bool {
	for _, known := range targetTypes {
		if t == known {
			return true
		}
	}

	return false
}

func (t TargetType) String() string {
	return string(t)
}

// AgeBand is an ordered age bracket. AgeBandUndisclosed is the sentinel for
// "prefer not to say" and "unknown".
type AgeBand string

const (
	AgeBandUnder59     AgeBand = "UNDER_59"
	AgeBand60to64      AgeBand = "AGE_60_64"
	AgeBand65to69      AgeBand = "AGE_65_69"
	AgeBand70to74      AgeBand = "AGE_70_74"
	AgeBand75to79      AgeBand = "AGE_75_79"
	AgeBand80to84      AgeBand = "AGE_80_84"
	AgeBand85to89      AgeBand = "AGE_85_89"
	AgeBand90to94      AgeBand = "AGE_90_94"
	AgeBand95to99      AgeBand = "AGE_95_99"
	AgeBand100Plus     AgeBand = "AGE_100_PLUS"
	AgeBandUndisclosed AgeBand = "NO_ANSWER"
)

// AgeBands lists the brackets in ascending order, sentinel excluded.
var AgeBands = []AgeBand{
	AgeBandUnder59,
	AgeBand60to64,
	AgeBand65to69,
	AgeBand70to74,
	AgeBand75to79,
	AgeBand80to84,
	AgeBand85to89,
	AgeBand90to94,
	AgeBand95to99,
	AgeBand100Plus,
}

func (a AgeBand) IsValid() bool {
	return a == AgeBandUndisclosed || a.Rank() >= 0
}

// Rank is the position of the band in AgeBands, -1 for the sentinel or an
// unknown value.
func (a AgeBand) Rank() int {
	for i, band := range AgeBands {
		if a == band {
			return i
		}
	}

	return -1
}

func (a AgeBand) String() string {
	return string(a)
}

// ParseAgeBand reads a band stored in the CRM. Unknown or blank values map to
// the undisclosed sentinel.
func ParseAgeBand(raw string) (AgeBand, bool) {
	band := AgeBand(strings.TrimSpace(raw))
	if band == "" || !band.IsValid() {
		return AgeBandUndisclosed, false
	}

	return band, true
}

// VisitorKind is the outcome of identity resolution.
type VisitorKind string

const (
	VisitorNew       VisitorKind = "NEW"
	VisitorReturning VisitorKind = "RETURNING"
)
