package model

// ZulipMember is one member entry of a resolved Zulip user group.
//
// Three legacy encodings exist in the data repository and all of them must
// keep working: a bare numeric id, a GitHub handle whose person record
// carries a Zulip id, and a GitHub handle without one. The type is sealed
// so that resolution code switches over exactly these three shapes.
type ZulipMember interface {
	isZulipMember()
}

// ZulipMemberID is a member known only by their numeric Zulip id.
type ZulipMemberID struct {
	ID int64
}

// ZulipMemberWithID is a member identified by GitHub handle with a known
// Zulip id.
type ZulipMemberWithID struct {
	GitHub string
	ID     int64
}

// ZulipMemberMissingID is a member identified by GitHub handle whose
// person record has no Zulip id.
type ZulipMemberMissingID struct {
	GitHub string
}

func (ZulipMemberID) isZulipMember()        {}
func (ZulipMemberWithID) isZulipMember()    {}
func (ZulipMemberMissingID) isZulipMember() {}

// ZulipGroup is a Zulip user group with its member list materialized from
// one or more team bindings.
type ZulipGroup struct {
	Name                string
	Members             []ZulipMember
	IncludesTeamMembers bool
}
