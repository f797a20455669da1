package tournament_test

import (
	"errors"
	"testing"

	"shortlist/internal/photo"
	"shortlist/internal/status"
	"shortlist/internal/testsupport"
	"shortlist/internal/tournament"
)

type fetchLog struct {
	requests []tournament.FetchRequest
}

func (f *fetchLog) record(req tournament.FetchRequest) {
	f.requests = append(f.requests, req)
}

func (f *fetchLog) reset() { f.requests = nil }

func newEngine(t *testing.T, names ...string) (*tournament.Engine, *testsupport.MemTagStore, *fetchLog) {
	t.Helper()
	store := testsupport.NewMemTagStore()
	fetches := &fetchLog{}
	eng := tournament.New(store, nil, fetches.record)

	recs := make([]*photo.Record, 0, len(names))
	for _, name := range names {
		recs = append(recs, photo.NewRecord("/pics/"+name, 1, status.Unset))
	}
	eng.Load(photo.NewLibrary(recs))
	fetches.reset()
	return eng, store, fetches
}

func TestChallengeOnFreshArena(t *testing.T) {
	eng, store, _ := newEngine(t, "x.jpg", "y.jpg")

	eng.Challenge()

	active := eng.Active()
	x := eng.Library().At(0)
	if active.Champion != x.ID {
		t.Fatalf("champion = %v, want cursor photo", active.Champion)
	}
	if len(active.Displaced) != 0 {
		t.Fatalf("displaced = %v, want empty", active.Displaced)
	}
	if x.Status != status.Champion {
		t.Fatalf("status = %v, want Champion", x.Status)
	}
	if store.Label(x.SourcePath) != "Green" {
		t.Fatalf("tag = %q, want Green", store.Label(x.SourcePath))
	}
}

func TestChallengeDisplacesPreviousChampion(t *testing.T) {
	eng, store, _ := newEngine(t, "x.jpg", "y.jpg")

	eng.Challenge()
	if !eng.Navigate(1) {
		t.Fatal("expected cursor move")
	}
	eng.Challenge()

	x, y := eng.Library().At(0), eng.Library().At(1)
	active := eng.Active()
	if active.Champion != y.ID {
		t.Fatal("expected new champion")
	}
	if len(active.Displaced) != 1 || active.Displaced[0] != x.ID {
		t.Fatalf("displaced = %v, want [x]", active.Displaced)
	}
	if x.Status != status.Displaced || y.Status != status.Champion {
		t.Fatalf("statuses: x=%v y=%v", x.Status, y.Status)
	}
	if store.Label(x.SourcePath) != "Yellow" || store.Label(y.SourcePath) != "Green" {
		t.Fatalf("tags: x=%q y=%q", store.Label(x.SourcePath), store.Label(y.SourcePath))
	}
}

func TestChallengeIdempotentOnSamePhoto(t *testing.T) {
	eng, _, _ := newEngine(t, "x.jpg")

	eng.Challenge()
	eng.Challenge()

	active := eng.Active()
	if len(active.Displaced) != 0 {
		t.Fatalf("self-challenge must not displace: %v", active.Displaced)
	}
	if active.Champion != eng.Library().At(0).ID {
		t.Fatal("champion lost on repeated challenge")
	}
}

func TestChallengeOrderingLaw(t *testing.T) {
	eng, _, _ := newEngine(t, "a.jpg", "b.jpg", "c.jpg", "d.jpg")

	for i := 0; i < 4; i++ {
		eng.Challenge()
		eng.Navigate(1)
	}

	lib := eng.Library()
	active := eng.Active()
	if active.Champion != lib.At(3).ID {
		t.Fatal("last challenger should be champion")
	}
	want := []photo.ID{lib.At(2).ID, lib.At(1).ID, lib.At(0).ID}
	if len(active.Displaced) != len(want) {
		t.Fatalf("displaced = %v, want %v", active.Displaced, want)
	}
	for i := range want {
		if active.Displaced[i] != want[i] {
			t.Fatalf("displaced[%d] = %v, want %v (reverse call order)", i, active.Displaced[i], want[i])
		}
	}
}

func TestFinalizeArchivesAndSeedsNextRound(t *testing.T) {
	eng, _, _ := newEngine(t, "x.jpg", "y.jpg", "z.jpg")

	eng.Challenge()
	eng.Navigate(1)
	eng.Challenge()
	eng.Navigate(1)
	eng.Finalize()

	arenas := eng.Arenas()
	if len(arenas) != 2 {
		t.Fatalf("arena count = %d, want 2", len(arenas))
	}
	if !arenas[0].Archived {
		t.Fatal("first arena should be archived")
	}
	if arenas[1].Archived {
		t.Fatal("active arena must not be archived")
	}
	y, z := eng.Library().At(1), eng.Library().At(2)
	if arenas[0].Champion != y.ID {
		t.Fatal("archived arena champion changed by finalize")
	}
	if arenas[1].Champion != z.ID {
		t.Fatal("new arena should be seeded with cursor photo")
	}
	if z.Status != status.Champion {
		t.Fatalf("seeded champion status = %v", z.Status)
	}
}

func TestRejectLeavesArenasUntouchedAndAdvances(t *testing.T) {
	eng, store, _ := newEngine(t, "x.jpg", "y.jpg", "z.jpg")

	eng.Challenge()
	eng.Navigate(1)
	eng.Reject()

	y := eng.Library().At(1)
	if y.Status != status.Rejected {
		t.Fatalf("status = %v, want Rejected", y.Status)
	}
	if store.Label(y.SourcePath) != "Red" {
		t.Fatalf("tag = %q, want Red", store.Label(y.SourcePath))
	}
	for _, arena := range eng.Arenas() {
		if arena.Contains(y.ID) {
			t.Fatal("rejected photo must not appear in any arena")
		}
	}
	if eng.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", eng.Cursor())
	}
}

func TestRejectAtLastPhotoKeepsCursor(t *testing.T) {
	eng, _, _ := newEngine(t, "x.jpg", "y.jpg")

	eng.Navigate(1)
	eng.Reject()

	if eng.Cursor() != 1 {
		t.Fatalf("cursor = %d, want clamped at 1", eng.Cursor())
	}
}

func TestNavigateClampsWithoutFetch(t *testing.T) {
	eng, _, fetches := newEngine(t, "x.jpg", "y.jpg")

	if eng.Navigate(-1) {
		t.Fatal("expected no move below zero")
	}
	if len(fetches.requests) != 0 {
		t.Fatalf("boundary no-op emitted fetches: %v", fetches.requests)
	}

	eng.Navigate(1)
	fetches.reset()
	if eng.Navigate(1) {
		t.Fatal("expected no move past last photo")
	}
	if len(fetches.requests) != 0 {
		t.Fatalf("boundary no-op emitted fetches: %v", fetches.requests)
	}
}

func TestNavigateFetchesChampionOnlyInCompareMode(t *testing.T) {
	eng, _, fetches := newEngine(t, "x.jpg", "y.jpg", "z.jpg")

	eng.Challenge()
	fetches.reset()
	eng.Navigate(1)
	for _, req := range fetches.requests {
		if req.Slot == tournament.SlotChampion {
			t.Fatal("champion fetch without compare mode")
		}
	}

	eng.SetCompareMode(true)
	fetches.reset()
	eng.Navigate(1)
	var cursorSeen, champSeen bool
	for _, req := range fetches.requests {
		switch req.Slot {
		case tournament.SlotCursor:
			cursorSeen = true
		case tournament.SlotChampion:
			champSeen = true
		}
	}
	if !cursorSeen || !champSeen {
		t.Fatalf("expected cursor and champion fetches, got %v", fetches.requests)
	}
}

func TestSetCompareModeFetchesChampion(t *testing.T) {
	eng, _, fetches := newEngine(t, "x.jpg", "y.jpg")

	eng.Challenge()
	fetches.reset()
	eng.SetCompareMode(true)
	if len(fetches.requests) != 1 || fetches.requests[0].Slot != tournament.SlotChampion {
		t.Fatalf("requests = %v, want single champion fetch", fetches.requests)
	}

	fetches.reset()
	eng.SetCompareMode(false)
	if len(fetches.requests) != 0 {
		t.Fatalf("disabling compare emitted fetches: %v", fetches.requests)
	}
}

func TestExactlyOneActiveArena(t *testing.T) {
	eng, _, _ := newEngine(t, "a.jpg", "b.jpg", "c.jpg")

	eng.Challenge()
	eng.Navigate(1)
	eng.Finalize()
	eng.Challenge()
	eng.Navigate(1)
	eng.Finalize()

	arenas := eng.Arenas()
	if len(arenas) < 1 {
		t.Fatal("arena stack must never be empty")
	}
	for i, arena := range arenas {
		wantArchived := i != len(arenas)-1
		if arena.Archived != wantArchived {
			t.Fatalf("arena[%d].Archived = %v, want %v", i, arena.Archived, wantArchived)
		}
	}
}

func TestAppendOnlyLaw(t *testing.T) {
	eng, _, _ := newEngine(t, "a.jpg", "b.jpg", "c.jpg", "d.jpg")

	photos := eng.Library().Len()
	var maxArenas, maxDisplaced int
	step := func() {
		if eng.Library().Len() != photos {
			t.Fatal("photo collection shrank")
		}
		if n := len(eng.Arenas()); n < maxArenas {
			t.Fatal("arena removed")
		} else {
			maxArenas = n
		}
		total := 0
		for _, a := range eng.Arenas() {
			total += len(a.Displaced)
		}
		if total < maxDisplaced {
			t.Fatal("displaced entry removed")
		}
		maxDisplaced = total
	}

	ops := []func(){
		eng.Challenge,
		func() { eng.Navigate(1) },
		eng.Challenge,
		eng.Finalize,
		func() { eng.Navigate(1) },
		eng.Challenge,
		eng.Reject,
		func() { eng.Navigate(-1) },
		eng.Challenge,
	}
	for _, op := range ops {
		op()
		step()
	}
}

func TestRejectedPhotoMayReenterAsChampion(t *testing.T) {
	eng, _, _ := newEngine(t, "x.jpg", "y.jpg")

	eng.Reject()
	eng.Navigate(-1)
	eng.Challenge()

	x := eng.Library().At(0)
	if x.Status != status.Champion {
		t.Fatalf("status = %v, want Champion after re-entry", x.Status)
	}
	if eng.Active().Champion != x.ID {
		t.Fatal("rejected photo should be allowed back as champion")
	}
}

func TestTagWriteFailureKeepsInMemoryStatus(t *testing.T) {
	eng, store, _ := newEngine(t, "x.jpg")

	boom := errors.New("disk full")
	store.FailWrites(boom)
	eng.Challenge()

	x := eng.Library().At(0)
	if x.Status != status.Champion {
		t.Fatalf("status = %v, want Champion despite tag failure", x.Status)
	}
	if !errors.Is(eng.LastTagError(), boom) {
		t.Fatalf("LastTagError = %v, want %v", eng.LastTagError(), boom)
	}
}

func TestOperationsOnEmptyLibraryAreNoOps(t *testing.T) {
	store := testsupport.NewMemTagStore()
	eng := tournament.New(store, nil, nil)

	eng.Challenge()
	eng.Finalize()
	eng.Reject()
	if eng.Navigate(1) {
		t.Fatal("navigate on empty library should not move")
	}
	if len(eng.Arenas()) != 1 {
		t.Fatalf("arena count = %d, want 1", len(eng.Arenas()))
	}
	if store.Writes() != 0 {
		t.Fatalf("unexpected tag writes: %d", store.Writes())
	}
}

func TestLoadResetsRoundsAndCursor(t *testing.T) {
	eng, _, fetches := newEngine(t, "a.jpg", "b.jpg")

	eng.Challenge()
	eng.Navigate(1)
	eng.Finalize()

	recs := []*photo.Record{photo.NewRecord("/other/new.jpg", 1, status.Unset)}
	eng.Load(photo.NewLibrary(recs))

	if eng.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", eng.Cursor())
	}
	if len(eng.Arenas()) != 1 || eng.Active().HasChampion() {
		t.Fatal("load should reset to a single empty arena")
	}
	last := fetches.requests[len(fetches.requests)-1]
	if last.Slot != tournament.SlotCursor {
		t.Fatalf("expected cursor fetch after load, got %v", last)
	}
}
