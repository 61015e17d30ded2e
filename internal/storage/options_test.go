package storage

import "testing"

func TestOptionsDefaults(t *testing.T) {
	store := openTestStore(t)

	def := ProfileOptions{ShowHints: true}
	got, err := store.LoadOptions("local", def)
	if err != nil {
		t.Fatalf("LoadOptions() failed: %v", err)
	}
	if got.Profile != "local" || !got.ShowHints || got.VisibleDiscards || got.StoryPhase != 0 {
		t.Errorf("defaults = %+v", got)
	}
	if !got.UpdatedAt.IsZero() {
		t.Error("defaults were never saved")
	}
}

func TestOptionsSaveLoadDelete(t *testing.T) {
	store := openTestStore(t)

	want := ProfileOptions{Profile: "local", VisibleDiscards: true, StoryPhase: 2}
	if err := store.SaveOptions(want); err != nil {
		t.Fatalf("SaveOptions() failed: %v", err)
	}

	got, err := store.LoadOptions("local", ProfileOptions{ShowHints: true})
	if err != nil {
		t.Fatalf("LoadOptions() failed: %v", err)
	}
	if got.ShowHints || !got.VisibleDiscards || got.StoryPhase != 2 || got.UpdatedAt.IsZero() {
		t.Errorf("loaded = %+v", got)
	}

	// Saving again replaces the row.
	want.ShowHints = true
	want.StoryPhase = 3
	if err := store.SaveOptions(want); err != nil {
		t.Fatalf("SaveOptions() failed: %v", err)
	}
	got, _ = store.LoadOptions("local", ProfileOptions{})
	if !got.ShowHints || got.StoryPhase != 3 {
		t.Errorf("after update = %+v", got)
	}

	// Other profiles are untouched.
	other, _ := store.LoadOptions("guest", ProfileOptions{})
	if other.StoryPhase != 0 || other.ShowHints {
		t.Errorf("guest = %+v", other)
	}

	deleted, err := store.DeleteOptions("local")
	if err != nil || !deleted {
		t.Fatalf("DeleteOptions() = %v, %v", deleted, err)
	}
	deleted, err = store.DeleteOptions("local")
	if err != nil || deleted {
		t.Errorf("second DeleteOptions() = %v, %v", deleted, err)
	}
	got, _ = store.LoadOptions("local", ProfileOptions{})
	if got.StoryPhase != 0 || got.VisibleDiscards {
		t.Errorf("after delete = %+v", got)
	}
}

func TestSaveOptionsNeedsProfile(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveOptions(ProfileOptions{}); err == nil {
		t.Error("empty profile should be rejected")
	}
}
