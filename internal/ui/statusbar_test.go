package ui

import (
	"strings"
	"testing"
	"time"

	"staffgrid/internal/notify"
)

func TestStatusBarShowsNotice(t *testing.T) {
	m := NewStatusBarModel()
	m.SetWidth(80)
	m.SetNotice(notify.Notice{Title: "Success", Message: "Employee added to the table", Kind: notify.KindSuccess, At: time.Now()})

	if got := m.View(); !strings.Contains(got, "Success: Employee added to the table") {
		t.Fatalf("notice missing from view: %q", got)
	}
}

func TestStatusBarNoticeExpires(t *testing.T) {
	m := NewStatusBarModel()
	m.SetWidth(80)
	m.SetNotice(notify.Notice{Title: "name", Message: "Value is empty", Kind: notify.KindError, At: time.Now().Add(-noticeTTL - time.Second)})

	m.ClearExpiredNotice()
	if got := m.View(); strings.Contains(got, "Value is empty") {
		t.Fatalf("expired notice still shown: %q", got)
	}
	if got := m.View(); !strings.Contains(got, "Sort column") {
		t.Fatalf("hints not restored after expiry: %q", got)
	}
}

func TestStatusBarFreshNoticeSurvivesSweep(t *testing.T) {
	m := NewStatusBarModel()
	m.SetWidth(80)
	m.SetNotice(notify.Notice{Title: "Success", Message: "office updated", Kind: notify.KindSuccess, At: time.Now()})

	m.ClearExpiredNotice()
	if got := m.View(); !strings.Contains(got, "office updated") {
		t.Fatalf("fresh notice was dropped: %q", got)
	}
}

func TestStatusBarHintsFollowMode(t *testing.T) {
	m := NewStatusBarModel()
	m.SetWidth(80)

	m.SetActivePane(1)
	if got := m.View(); !strings.Contains(got, "Submit") {
		t.Fatalf("form hints missing: %q", got)
	}

	m.SetEditMode(true)
	if got := m.View(); !strings.Contains(got, "Enter Save") {
		t.Fatalf("edit hints missing: %q", got)
	}
}
