package domain

import "strconv"

// Primary keys are distinct types so a CycleID can't be passed where a MemberID is expected.
type (
	GenerationID uint
	CycleID      uint
	MemberID     uint
	SubmissionID uint
)

func (id GenerationID) Equals(other GenerationID) bool { return id == other }
func (id GenerationID) String() string                 { return strconv.FormatUint(uint64(id), 10) }

func (id CycleID) Equals(other CycleID) bool { return id == other }
func (id CycleID) String() string            { return strconv.FormatUint(uint64(id), 10) }

func (id MemberID) Equals(other MemberID) bool { return id == other }
func (id MemberID) String() string             { return strconv.FormatUint(uint64(id), 10) }

func (id SubmissionID) Equals(other SubmissionID) bool { return id == other }
func (id SubmissionID) String() string                 { return strconv.FormatUint(uint64(id), 10) }
