// internals/resource/form.go
//
// Pipeline generik create/update: satu rutinitas menangani POST, PUT,
// dan PATCH untuk semua resource, diparametrikan hanya oleh nama
// resource (dari request context) dan method HTTP. Port-an eksplisit
// dari form binding framework lama: submit manual + clearMissing,
// validasi dalam, lalu flush sekali.
package resource

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// Pesan validasi default, disengaja sama dengan framework lama supaya
// konsumen API tidak perlu berubah.
const (
	msgNotBlank    = "This value should not be blank."
	msgNotNull     = "This value should not be null."
	msgInvalid     = "This value is not valid."
	msgExtraFields = "This form should not contain extra fields."
)

// FormHandler: fasad pipeline generik. Satu instance dishare semua
// controller; tidak menyimpan state antar request.
type FormHandler struct {
	Store    *Store
	Registry *Registry
}

func NewFormHandler(store *Store) *FormHandler {
	return &FormHandler{Store: store, Registry: store.Registry}
}

// GetAll: listing dengan criteria {active} + limit.
func (h *FormHandler) GetAll(resourceName string, criteria map[string]string, limit int) (any, int, error) {
	return h.Store.FindAll(resourceName, criteria, limit)
}

// Create: entity baru dari payload (POST).
func (h *FormHandler) Create(resourceName, method string, payload []byte) (any, error) {
	return h.processForm(resourceName, method, payload, nil)
}

// Update: merge payload ke entity yang sudah ada (PUT, PATCH).
func (h *FormHandler) Update(resourceName, method string, payload []byte, object any) (any, error) {
	return h.processForm(resourceName, method, payload, object)
}

// Delete: hapus entity plus anak-anaknya, flush langsung. Idempoten
// dari sudut pandang caller; lookup-miss sudah ditangani routing.
func (h *FormHandler) Delete(resourceName string, object any) error {
	uow := h.Store.NewUnitOfWork()
	uow.Remove(resourceName, object)
	return uow.Flush()
}

// processForm menjalankan state machine per invocation:
// resolve target → resolve bindings → bind payload → validasi →
// persist/flush atau error report. Tidak ada partial persistence:
// flush hanya tercapai kalau seluruh tree valid.
func (h *FormHandler) processForm(resourceName, method string, payload []byte, object any) (any, error) {
	sc, err := h.Registry.Lookup(resourceName)
	if err != nil {
		return nil, err
	}

	if object == nil {
		object = sc.New()
	}

	var data map[string]json.RawMessage
	if err := sonic.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	uow := h.Store.NewUnitOfWork()
	b := &binder{store: h.Store, uow: uow}

	form := newEntityForm(sc, object, "", true)
	// Aturan paling penting di pipeline ini: selain PATCH, key yang
	// absen MENGOSONGKAN field-nya (full binding, bukan merge).
	clearMissing := method != fiber.MethodPatch
	b.submit(form, data, clearMissing)
	validate(form)

	if !form.valid() {
		return nil, &InvalidFormError{Form: form}
	}

	if method == fiber.MethodPost {
		uow.Persist(resourceName, object)
	} else {
		uow.Save(resourceName, object)
	}
	if err := uow.Flush(); err != nil {
		return nil, err
	}
	return object, nil
}

/* =========================================================
   Form tree
   ========================================================= */

// Form adalah satu node hasil binding: node entity (root atau elemen
// collection) punya anak per field; node field scalar/entity adalah
// daun; node field collection punya anak entity per elemen payload.
type Form struct {
	name     string
	root     bool
	schema   *Schema       // terisi untuk node entity
	binding  *FieldBinding // terisi untuk node field
	data     any           // entity untuk node entity
	errs     []string
	children []*Form
}

func newEntityForm(sc *Schema, entity any, name string, root bool) *Form {
	return &Form{name: name, root: root, schema: sc, data: entity}
}

func (f *Form) valid() bool {
	if len(f.errs) > 0 {
		return false
	}
	for _, c := range f.children {
		if !c.valid() {
			return false
		}
	}
	return true
}

func (f *Form) addError(msg string) { f.errs = append(f.errs, msg) }

// ErrorMessages membangun report bersarang dengan berjalan di form
// tree: pesan milik root masuk ke key "#", pesan langsung node lain
// jadi list datar, dan tiap field anak yang gagal menyumbang entry
// ber-key nama field-nya, rekursif. Daun murni (hanya pesan, tanpa
// anak) di-serialize sebagai array string.
func (f *Form) ErrorMessages() map[string]any {
	out, _ := f.messages().(map[string]any)
	if out == nil {
		// root tanpa struktur anak; bungkus pesan langsungnya
		out = map[string]any{}
		if len(f.errs) > 0 {
			out["#"] = f.errs
		}
	}
	return out
}

func (f *Form) messages() any {
	var failing []*Form
	for _, c := range f.children {
		if !c.valid() {
			failing = append(failing, c)
		}
	}

	if !f.root && len(failing) == 0 {
		return f.errs // daun: array pesan
	}

	out := map[string]any{}
	if f.root {
		if len(f.errs) > 0 {
			out["#"] = f.errs
		}
	} else {
		// node campuran: pesan langsung pakai key numerik, meniru
		// serialisasi mixed array lama
		for i, msg := range f.errs {
			out[strconv.Itoa(i)] = msg
		}
	}
	for _, c := range failing {
		out[c.name] = c.messages()
	}
	return out
}

/* =========================================================
   Binding (submit)
   ========================================================= */

type binder struct {
	store *Store
	uow   *UnitOfWork
}

// submit mem-bind payload ke entity milik form node, field demi field.
// clearMissing menentukan nasib key yang absen: di-reset (POST/PUT)
// atau dibiarkan (PATCH).
func (b *binder) submit(f *Form, data map[string]json.RawMessage, clearMissing bool) {
	sc := f.schema
	entity := f.data

	known := make(map[string]struct{}, len(sc.Fields)+1)
	known[sc.IDField] = struct{}{}

	for i := range sc.Fields {
		fb := &sc.Fields[i]
		known[fb.Name] = struct{}{}

		child := &Form{name: fb.Name, binding: fb, data: entity}
		f.children = append(f.children, child)

		raw, present := data[fb.Name]
		if !present && !clearMissing {
			continue // PATCH: biarkan field apa adanya
		}

		switch fb.Kind {
		case KindText:
			b.bindText(child, entity, fb, raw, present)
		case KindInteger:
			b.bindInt(child, entity, fb, raw, present)
		case KindBoolean:
			b.bindBool(child, entity, fb, raw, present)
		case KindEntity:
			b.bindEntity(child, entity, fb, raw, present)
		case KindCollection:
			b.bindCollection(child, entity, fb, raw, present, clearMissing)
		}
	}

	// form strict: field tak dikenal jadi error di root payload-nya
	for key := range data {
		if _, ok := known[key]; !ok {
			f.addError(msgExtraFields)
			break
		}
	}
}

func (b *binder) bindText(child *Form, entity any, fb *FieldBinding, raw json.RawMessage, present bool) {
	if !present {
		fb.SetText(entity, nil)
		return
	}
	var v *string
	if err := sonic.Unmarshal(raw, &v); err != nil {
		child.addError(msgInvalid)
		return
	}
	fb.SetText(entity, v)
}

func (b *binder) bindInt(child *Form, entity any, fb *FieldBinding, raw json.RawMessage, present bool) {
	if !present {
		fb.SetInt(entity, nil)
		return
	}
	var v *int
	if err := sonic.Unmarshal(raw, &v); err != nil {
		child.addError(msgInvalid)
		return
	}
	fb.SetInt(entity, v)
}

func (b *binder) bindBool(child *Form, entity any, fb *FieldBinding, raw json.RawMessage, present bool) {
	if !present {
		fb.SetBool(entity, nil)
		return
	}
	var v *bool
	if err := sonic.Unmarshal(raw, &v); err == nil {
		fb.SetBool(entity, v)
		return
	}
	// choice lama menerima 1/0
	var n *int
	if err := sonic.Unmarshal(raw, &n); err == nil {
		if n == nil {
			fb.SetBool(entity, nil)
			return
		}
		if *n == 0 || *n == 1 {
			bv := *n == 1
			fb.SetBool(entity, &bv)
			return
		}
	}
	child.addError(msgInvalid)
}

// bindEntity me-resolve reference berdasarkan id di payload. Reference
// yang tidak ketemu adalah kegagalan validasi di field itu, bukan hard
// error; requiredness-nya diperiksa belakangan di validate.
func (b *binder) bindEntity(child *Form, entity any, fb *FieldBinding, raw json.RawMessage, present bool) {
	if !present {
		fb.SetRef(entity, nil)
		return
	}
	var id *int
	if err := sonic.Unmarshal(raw, &id); err != nil {
		child.addError(msgInvalid)
		return
	}
	if id == nil {
		fb.SetRef(entity, nil)
		return
	}
	ref, err := b.store.FindByID(fb.Resource, *id)
	if err != nil {
		child.addError(msgInvalid)
		return
	}
	fb.SetRef(entity, ref)
}

// bindCollection menerapkan algoritma binding yang sama per elemen
// array, rekursif. Elemen yang membawa id anak yang sudah ada di-merge
// ke anak itu; elemen tanpa id (atau id tak dikenal) jadi anak baru dan
// di-link ke pemilik; anak lama yang tidak muncul di payload dilepas
// dan dijadwalkan untuk dihapus saat flush.
func (b *binder) bindCollection(child *Form, owner any, fb *FieldBinding, raw json.RawMessage, present bool, clearMissing bool) {
	childSchema, err := b.store.Registry.Lookup(fb.Resource)
	if err != nil {
		child.addError(msgInvalid)
		return
	}

	var elems []json.RawMessage
	if present {
		if err := sonic.Unmarshal(raw, &elems); err != nil {
			child.addError(msgInvalid)
			return
		}
	}
	// !present && clearMissing: full binding memperlakukan collection
	// absen sebagai kosong → semua anak lama dilepas

	existing := fb.Items(owner)
	byID := make(map[int]any, len(existing))
	for _, item := range existing {
		byID[fb.ItemID(item)] = item
	}

	matched := make(map[int]bool, len(elems))
	for idx, elemRaw := range elems {
		var elemData map[string]json.RawMessage
		if err := sonic.Unmarshal(elemRaw, &elemData); err != nil {
			node := &Form{name: strconv.Itoa(idx)}
			node.addError(msgInvalid)
			child.children = append(child.children, node)
			continue
		}

		var item any
		isNew := true
		if rawID, ok := elemData[childSchema.IDField]; ok {
			var id int
			if err := sonic.Unmarshal(rawID, &id); err == nil {
				if found, ok := byID[id]; ok {
					item = found
					isNew = false
					matched[id] = true
				}
			}
		}
		if item == nil {
			item = childSchema.New()
		}

		node := newEntityForm(childSchema, item, strconv.Itoa(idx), false)
		child.children = append(child.children, node)
		b.submit(node, elemData, clearMissing)

		if isNew {
			fb.Add(owner, item) // set juga sisi pemilik di anak
		}
		// elemen yang tidak menyebut back-reference-nya tetap milik
		// pemilik collection, full binding sekalipun
		if fb.ParentField != "" {
			if _, ok := elemData[fb.ParentField]; !ok {
				if pb := childSchema.fieldByName(fb.ParentField); pb != nil && pb.SetRef != nil {
					pb.SetRef(item, owner)
				}
			}
		}
	}

	for id, item := range byID {
		if !matched[id] {
			fb.Remove(owner, item)
			b.uow.Remove(fb.Resource, item)
		}
	}
}

/* =========================================================
   Validasi
   ========================================================= */

// validate menerapkan constraint per binding pada nilai yang sudah
// ter-bind, lalu turun rekursif ke sub-form collection (validasi
// dalam, bukan cuma level atas).
func validate(f *Form) {
	entity := f.data
	for _, child := range f.children {
		fb := child.binding
		if fb == nil {
			continue
		}
		switch fb.Kind {
		case KindText:
			if fb.NotBlank {
				if v := fb.GetText(entity); v == nil || *v == "" {
					child.addError(msgNotBlank)
				}
			}
		case KindInteger:
			if fb.NotBlank {
				if fb.GetInt(entity) == nil {
					child.addError(msgNotBlank)
				}
			}
		case KindBoolean:
			if fb.NotNull {
				if fb.GetBool(entity) == nil {
					child.addError(msgNotNull)
				}
			}
		case KindEntity:
			if fb.NotNull {
				if isNilRef(fb.GetRef(entity)) {
					child.addError(msgNotNull)
				}
			}
		case KindCollection:
			for _, node := range child.children {
				if node.schema != nil {
					validate(node)
				}
			}
		}
	}
}

func isNilRef(v any) bool { return v == nil }
