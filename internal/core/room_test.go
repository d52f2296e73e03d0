package core

import (
	"reflect"
	"testing"
	"time"
)

func TestRoomRemoveConnPreservesOrder(t *testing.T) {
	room := NewRoom("r", Participant{Username: "a", ConnID: "c1"}, time.Now())
	room.Participants = append(room.Participants,
		Participant{Username: "b", ConnID: "c2"},
		Participant{Username: "c", ConnID: "c3"},
	)

	if !room.RemoveConn("c2") {
		t.Fatal("expected removal")
	}
	if got := room.Usernames(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("order not preserved: %v", got)
	}
	if room.RemoveConn("c2") {
		t.Fatal("second removal must report false")
	}
}

func TestRoomParticipantListIsCopy(t *testing.T) {
	room := NewRoom("r", Participant{Username: "a", ConnID: "c1"}, time.Now())

	list := room.ParticipantList()
	list[0].Username = "mutated"

	if room.Participants[0].Username != "a" {
		t.Fatal("ParticipantList leaked the backing array")
	}
}
