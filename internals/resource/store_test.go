// internals/resource/store_test.go
package resource_test

import (
	"errors"
	"testing"
	"time"

	"surveyku_backend/internals/resource"

	surveyModel "surveyku_backend/internals/features/surveys/model"
	testModel "surveyku_backend/internals/features/tests/model"
)

func seedSurvey(t *testing.T, h *resource.FormHandler, title string, active bool) *surveyModel.SurveyModel {
	t.Helper()
	d := 10
	s := &surveyModel.SurveyModel{TitleSurvey: title, DurationSurvey: &d, Active: active}
	if err := h.Store.DB.Create(s).Error; err != nil {
		t.Fatalf("seed survey: %v", err)
	}
	return s
}

func TestFindByIDNotFound(t *testing.T) {
	h, _ := newHandler(t)
	_, err := h.Store.FindByID("Survey", 12345)
	if !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("mau ErrNotFound, dapat %v", err)
	}
}

// Filter "active" memang substring match terhadap nilai tersimpan
// (cast ke text), bukan perbandingan boolean. Perilaku lama yang
// dipertahankan; test ini mengunci semantiknya.
func TestFindAllActiveLikeFilter(t *testing.T) {
	h, _ := newHandler(t)
	seedSurvey(t, h, "Aktif", true)
	seedSurvey(t, h, "Nonaktif", false)

	list, n, err := h.Store.FindAll("Survey", map[string]string{"active": "1"}, 0)
	if err != nil {
		t.Fatalf("findall: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, mau 1", n)
	}
	got := *list.(*[]*surveyModel.SurveyModel)
	if got[0].TitleSurvey != "Aktif" {
		t.Fatalf("dapat %q", got[0].TitleSurvey)
	}
}

func TestFindAllLimit(t *testing.T) {
	h, _ := newHandler(t)
	for i := 0; i < 5; i++ {
		seedSurvey(t, h, "S", true)
	}

	_, n, err := h.Store.FindAll("Survey", nil, 2)
	if err != nil {
		t.Fatalf("findall: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, mau 2", n)
	}
}

func TestFindLatestOrdersByUpdated(t *testing.T) {
	h, db := newHandler(t)
	s := seedSurvey(t, h, "S", true)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []int
	for i := 0; i < 3; i++ {
		sid := s.IDSurvey
		tm := &testModel.TestModel{SurveyID: &sid, Scoring: i}
		if err := db.Create(tm).Error; err != nil {
			t.Fatalf("seed test: %v", err)
		}
		// UpdateColumn supaya autoUpdateTime tidak menimpa nilai uji
		if err := db.Model(tm).UpdateColumn("updated", base.Add(time.Duration(i)*time.Hour)).Error; err != nil {
			t.Fatalf("set updated: %v", err)
		}
		ids = append(ids, tm.IDTest)
	}

	list, n, err := h.Store.FindLatest("Test", 2, 0)
	if err != nil {
		t.Fatalf("findlatest: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, mau 2", n)
	}
	got := *list.(*[]*testModel.TestModel)
	if got[0].IDTest != ids[2] || got[1].IDTest != ids[1] {
		t.Fatalf("urutan salah: %d, %d", got[0].IDTest, got[1].IDTest)
	}

	// offset menggeser jendela
	list, n, err = h.Store.FindLatest("Test", 2, 2)
	if err != nil {
		t.Fatalf("findlatest offset: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, mau 1", n)
	}
	got = *list.(*[]*testModel.TestModel)
	if got[0].IDTest != ids[0] {
		t.Fatalf("offset salah: %d", got[0].IDTest)
	}
}

func TestFlushRemovesChildrenNotPreloaded(t *testing.T) {
	h, db := newHandler(t)
	s := seedSurvey(t, h, "S", true)
	sid := s.IDSurvey
	q := &surveyModel.QuestionModel{TitleQuestion: "Q", SurveyID: &sid}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}

	// entity tanpa preload: cascade harus mengambil anaknya sendiri
	uow := h.Store.NewUnitOfWork()
	uow.Remove("Survey", &surveyModel.SurveyModel{IDSurvey: s.IDSurvey})
	if err := uow.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if n := countRows(t, db, &surveyModel.QuestionModel{}); n != 0 {
		t.Fatalf("question masih ada: %d", n)
	}
}
