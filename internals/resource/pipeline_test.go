// internals/resource/pipeline_test.go
package resource_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	referentialForm "surveyku_backend/internals/features/referentials/form"
	surveyForm "surveyku_backend/internals/features/surveys/form"
	surveyModel "surveyku_backend/internals/features/surveys/model"
	testForm "surveyku_backend/internals/features/tests/form"
	"surveyku_backend/internals/resource"
	referentialSeeds "surveyku_backend/internals/seeds/referentials"
	"surveyku_backend/internals/testutil"
)

func newHandler(t *testing.T) (*resource.FormHandler, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	referentialSeeds.SeedQuestionFormats(db)

	reg := resource.NewRegistry()
	surveyForm.RegisterSchemas(reg)
	referentialForm.RegisterSchemas(reg)
	testForm.RegisterSchemas(reg)

	return resource.NewFormHandler(resource.NewStore(db, reg)), db
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestCreateSurveyNested(t *testing.T) {
	h, db := newHandler(t)

	payload := []byte(`{
		"titleSurvey": "Kepuasan Layanan",
		"description": "Survei layanan semester ini",
		"durationSurvey": 30,
		"active": true,
		"questions": [
			{
				"titleQuestion": "Seberapa puas Anda?",
				"format": 2,
				"order": 1,
				"active": true,
				"responses": [
					{"contentResponse": "Puas", "isGoodResponse": true, "scoring": 10, "order": 1, "active": true},
					{"contentResponse": "Tidak puas", "isGoodResponse": false, "scoring": 0, "order": 2, "active": true}
				]
			},
			{
				"titleQuestion": "Saran Anda?",
				"format": 3,
				"order": 2,
				"active": true,
				"responses": []
			}
		]
	}`)

	obj, err := h.Create("Survey", fiber.MethodPost, payload)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	survey := obj.(*surveyModel.SurveyModel)
	if survey.IDSurvey == 0 {
		t.Fatal("id survey tidak terisi")
	}
	if len(survey.Questions) != 2 {
		t.Fatalf("questions = %d, mau 2", len(survey.Questions))
	}
	if survey.DurationSurvey == nil || *survey.DurationSurvey != 30 {
		t.Fatalf("durationSurvey = %v, mau 30", survey.DurationSurvey)
	}

	if n := countRows(t, db, &surveyModel.QuestionModel{}); n != 2 {
		t.Fatalf("baris question = %d, mau 2", n)
	}
	if n := countRows(t, db, &surveyModel.ResponseModel{}); n != 2 {
		t.Fatalf("baris response = %d, mau 2", n)
	}

	// baca balik lewat store: preload urut "order"
	loaded, err := h.Store.FindByID("Survey", survey.IDSurvey)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	got := loaded.(*surveyModel.SurveyModel)
	if got.Questions[0].TitleQuestion != "Seberapa puas Anda?" {
		t.Fatalf("urutan question salah: %q", got.Questions[0].TitleQuestion)
	}
	if len(got.Questions[0].Responses) != 2 {
		t.Fatalf("responses ter-load = %d, mau 2", len(got.Questions[0].Responses))
	}
	if got.Questions[0].SurveyID == nil || *got.Questions[0].SurveyID != survey.IDSurvey {
		t.Fatal("FK question → survey tidak terisi")
	}
}

func TestCreateInvalidBuildsNestedReport(t *testing.T) {
	h, db := newHandler(t)

	payload := []byte(`{
		"titleSurvey": "",
		"description": "ok",
		"durationSurvey": 10,
		"bukanField": 1,
		"questions": [
			{"titleQuestion": "Valid", "order": 1},
			{"titleQuestion": "", "order": 2}
		]
	}`)

	_, err := h.Create("Survey", fiber.MethodPost, payload)
	var invalid *resource.InvalidFormError
	if !errors.As(err, &invalid) {
		t.Fatalf("mau InvalidFormError, dapat %v", err)
	}
	report := invalid.Report()

	root, ok := report["#"].([]string)
	if !ok || len(root) == 0 || root[0] != "This form should not contain extra fields." {
		t.Fatalf("pesan root salah: %#v", report["#"])
	}

	title, ok := report["titleSurvey"].([]string)
	if !ok || len(title) != 1 || title[0] != "This value should not be blank." {
		t.Fatalf("pesan titleSurvey salah: %#v", report["titleSurvey"])
	}

	questions, ok := report["questions"].(map[string]any)
	if !ok {
		t.Fatalf("report questions bukan map: %#v", report["questions"])
	}
	if _, ok := questions["0"]; ok {
		t.Fatal("question valid ikut masuk report")
	}
	second, ok := questions["1"].(map[string]any)
	if !ok {
		t.Fatalf("report questions.1 bukan map: %#v", questions["1"])
	}
	qt, ok := second["titleQuestion"].([]string)
	if !ok || qt[0] != "This value should not be blank." {
		t.Fatalf("pesan questions.1.titleQuestion salah: %#v", second["titleQuestion"])
	}

	// validasi gagal = tidak ada yang tertulis sama sekali
	if n := countRows(t, db, &surveyModel.SurveyModel{}); n != 0 {
		t.Fatalf("survey tersimpan padahal invalid: %d baris", n)
	}
	if n := countRows(t, db, &surveyModel.QuestionModel{}); n != 0 {
		t.Fatalf("question tersimpan padahal invalid: %d baris", n)
	}
}

func TestPutClearsMissingPatchKeeps(t *testing.T) {
	h, _ := newHandler(t)

	created, err := h.Create("Survey", fiber.MethodPost, []byte(`{
		"titleSurvey": "Awal", "description": "Deskripsi", "durationSurvey": 15, "active": true
	}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	survey := created.(*surveyModel.SurveyModel)

	// PATCH: field absen dibiarkan
	patched, err := h.Update("Survey", fiber.MethodPatch, []byte(`{"titleSurvey":"Diganti"}`), survey)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	s := patched.(*surveyModel.SurveyModel)
	if s.TitleSurvey != "Diganti" {
		t.Fatalf("titleSurvey = %q", s.TitleSurvey)
	}
	if s.Description == nil || *s.Description != "Deskripsi" {
		t.Fatalf("PATCH mengubah description: %v", s.Description)
	}
	if !s.Active {
		t.Fatal("PATCH mengubah active")
	}

	// PUT: "active" absen → di-reset ke false
	put, err := h.Update("Survey", fiber.MethodPut, []byte(`{
		"titleSurvey": "Full", "description": "Deskripsi", "durationSurvey": 15
	}`), s)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if put.(*surveyModel.SurveyModel).Active {
		t.Fatal("PUT tidak me-reset active yang absen")
	}

	// PUT tanpa description: field wajib ikut ter-clear → laporan error
	_, err = h.Update("Survey", fiber.MethodPut, []byte(`{
		"titleSurvey": "Full", "durationSurvey": 15
	}`), put)
	var invalid *resource.InvalidFormError
	if !errors.As(err, &invalid) {
		t.Fatalf("mau InvalidFormError, dapat %v", err)
	}
	desc, ok := invalid.Report()["description"].([]string)
	if !ok || desc[0] != "This value should not be blank." {
		t.Fatalf("pesan description salah: %#v", invalid.Report()["description"])
	}
}

func TestPutMergesCollectionByID(t *testing.T) {
	h, db := newHandler(t)

	created, err := h.Create("Survey", fiber.MethodPost, []byte(`{
		"titleSurvey": "Survei", "description": "d", "durationSurvey": 5, "active": true,
		"questions": [
			{"titleQuestion": "Pertama", "order": 1},
			{"titleQuestion": "Kedua", "order": 2}
		]
	}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	survey := created.(*surveyModel.SurveyModel)
	firstID := survey.Questions[0].IDQuestion
	secondID := survey.Questions[1].IDQuestion

	payload := []byte(`{
		"titleSurvey": "Survei", "description": "d", "durationSurvey": 5, "active": true,
		"questions": [
			{"idQuestion": ` + itoa(firstID) + `, "titleQuestion": "Pertama (edit)", "order": 1},
			{"titleQuestion": "Ketiga", "order": 3}
		]
	}`)
	updated, err := h.Update("Survey", fiber.MethodPut, payload, survey)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	s := updated.(*surveyModel.SurveyModel)
	if len(s.Questions) != 2 {
		t.Fatalf("questions = %d, mau 2", len(s.Questions))
	}

	var gone surveyModel.QuestionModel
	if err := db.First(&gone, "id_question = ?", secondID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("question yang dilepas masih ada (err=%v)", err)
	}
	var kept surveyModel.QuestionModel
	if err := db.First(&kept, "id_question = ?", firstID).Error; err != nil {
		t.Fatalf("question yang di-merge hilang: %v", err)
	}
	if kept.TitleQuestion != "Pertama (edit)" {
		t.Fatalf("merge tidak mengubah title: %q", kept.TitleQuestion)
	}
	if n := countRows(t, db, &surveyModel.QuestionModel{}); n != 2 {
		t.Fatalf("total question = %d, mau 2", n)
	}
}

// Update no-op: payload yang direkonstruksi dari nilai entity sendiri
// harus lolos validasi dan tidak mengubah apa pun (termasuk id anak).
func TestNoOpUpdateRoundTrip(t *testing.T) {
	h, db := newHandler(t)

	created, err := h.Create("Survey", fiber.MethodPost, []byte(`{
		"titleSurvey": "Tetap", "description": "d", "durationSurvey": 5, "active": true,
		"questions": [{"titleQuestion": "Q", "format": 2, "order": 1, "active": true, "responses": [
			{"contentResponse": "R", "isGoodResponse": true, "scoring": 3, "order": 1, "active": true}
		]}]
	}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	survey := created.(*surveyModel.SurveyModel)
	qid := survey.Questions[0].IDQuestion
	rid := survey.Questions[0].Responses[0].IDResponse

	payload := []byte(`{
		"titleSurvey": "Tetap", "description": "d", "durationSurvey": 5, "active": true,
		"questions": [{"idQuestion": ` + itoa(qid) + `, "titleQuestion": "Q", "format": 2, "order": 1, "active": true, "responses": [
			{"idResponse": ` + itoa(rid) + `, "contentResponse": "R", "isGoodResponse": true, "scoring": 3, "order": 1, "active": true}
		]}]
	}`)
	updated, err := h.Update("Survey", fiber.MethodPut, payload, survey)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	s := updated.(*surveyModel.SurveyModel)
	if s.Questions[0].IDQuestion != qid || s.Questions[0].Responses[0].IDResponse != rid {
		t.Fatal("round trip membuat anak baru, bukan merge")
	}
	if n := countRows(t, db, &surveyModel.QuestionModel{}); n != 1 {
		t.Fatalf("question = %d, mau 1", n)
	}
	if n := countRows(t, db, &surveyModel.ResponseModel{}); n != 1 {
		t.Fatalf("response = %d, mau 1", n)
	}
}

func TestDeleteCascades(t *testing.T) {
	h, db := newHandler(t)

	created, err := h.Create("Survey", fiber.MethodPost, []byte(`{
		"titleSurvey": "Hapus", "description": "d", "durationSurvey": 5, "active": true,
		"questions": [
			{"titleQuestion": "Q", "order": 1, "responses": [
				{"contentResponse": "R", "isGoodResponse": true, "scoring": 1, "order": 1}
			]}
		]
	}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := h.Delete("Survey", created); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n := countRows(t, db, &surveyModel.SurveyModel{}); n != 0 {
		t.Fatalf("survey masih ada: %d", n)
	}
	if n := countRows(t, db, &surveyModel.QuestionModel{}); n != 0 {
		t.Fatalf("question tidak ikut terhapus: %d", n)
	}
	if n := countRows(t, db, &surveyModel.ResponseModel{}); n != 0 {
		t.Fatalf("response tidak ikut terhapus: %d", n)
	}
}

// Collection kosong beneran (survey tanpa question) tidak boleh bikin
// delete membaca di luar transaksi Flush. Di harness sqlite pool-nya
// cuma satu koneksi, jadi baca lewat store.DB akan menunggu selamanya;
// timeout di sini mengubah gantung jadi kegagalan yang jelas.
func TestDeleteSurveyWithoutQuestions(t *testing.T) {
	h, db := newHandler(t)

	created, err := h.Create("Survey", fiber.MethodPost, []byte(`{
		"titleSurvey": "Kosong", "description": "d", "durationSurvey": 5, "active": true
	}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- h.Delete("Survey", created) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("delete menggantung: baca ulang di deleteCascade harus lewat tx Flush")
	}

	if n := countRows(t, db, &surveyModel.SurveyModel{}); n != 0 {
		t.Fatalf("survey masih ada: %d", n)
	}
}

func TestUnresolvableReferenceIsFieldError(t *testing.T) {
	h, _ := newHandler(t)

	_, err := h.Create("Question", fiber.MethodPost, []byte(`{
		"titleQuestion": "Q", "survey": 999, "order": 1
	}`))
	var invalid *resource.InvalidFormError
	if !errors.As(err, &invalid) {
		t.Fatalf("mau InvalidFormError, dapat %v", err)
	}
	msg, ok := invalid.Report()["survey"].([]string)
	if !ok || msg[0] != "This value is not valid." {
		t.Fatalf("pesan survey salah: %#v", invalid.Report()["survey"])
	}
}

func TestMalformedPayload(t *testing.T) {
	h, _ := newHandler(t)
	_, err := h.Create("Survey", fiber.MethodPost, []byte(`{bukan json`))
	if !errors.Is(err, resource.ErrMalformedPayload) {
		t.Fatalf("mau ErrMalformedPayload, dapat %v", err)
	}
}

func TestUnknownResource(t *testing.T) {
	h, _ := newHandler(t)
	_, err := h.Create("Unknown", fiber.MethodPost, []byte(`{}`))
	if !errors.Is(err, resource.ErrResourceNotFound) {
		t.Fatalf("mau ErrResourceNotFound, dapat %v", err)
	}
}

func TestCreateTestWithDecisions(t *testing.T) {
	h, db := newHandler(t)

	created, err := h.Create("Survey", fiber.MethodPost, []byte(`{
		"titleSurvey": "S", "description": "d", "durationSurvey": 5, "active": true,
		"questions": [{"titleQuestion": "Q", "order": 1, "responses": [
			{"contentResponse": "R", "isGoodResponse": true, "scoring": 7, "order": 1}
		]}]
	}`))
	if err != nil {
		t.Fatalf("create survey: %v", err)
	}
	survey := created.(*surveyModel.SurveyModel)
	questionID := survey.Questions[0].IDQuestion
	responseID := survey.Questions[0].Responses[0].IDResponse

	obj, err := h.Create("Test", fiber.MethodPost, []byte(`{
		"survey": `+itoa(survey.IDSurvey)+`,
		"scoring": 7,
		"decisions": [
			{"question": `+itoa(questionID)+`, "response": `+itoa(responseID)+`},
			{"question": `+itoa(questionID)+`, "dynamicResponse": "jawaban bebas"}
		]
	}`))
	if err != nil {
		t.Fatalf("create test: %v", err)
	}
	_ = obj

	var n int64
	if err := db.Table("decision").Count(&n).Error; err != nil {
		t.Fatalf("count decision: %v", err)
	}
	if n != 2 {
		t.Fatalf("decision = %d, mau 2", n)
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
