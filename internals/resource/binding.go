// internals/resource/binding.go
package resource

// FieldKind menentukan cara sebuah field di-bind dari payload.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInteger
	KindBoolean // menerima true/false atau 1/0 (choice lama)
	KindEntity
	KindCollection
)

// FieldBinding mendeskripsikan satu field form: nama key di payload,
// jenis nilainya, constraint, dan accessor ke entity. Accessor ditulis
// eksplisit per resource (closure bertipe) supaya binding bebas reflection.
//
// Scalar accessor memakai pointer: nil artinya "null" (belum/di-clear).
// Untuk field model non-pointer, closure yang memetakan nil ke zero value.
type FieldBinding struct {
	Name     string
	Kind     FieldKind
	NotBlank bool // teks: tolak kosong, integer: tolak null
	NotNull  bool // entity/boolean: tolak null

	// Target resource untuk KindEntity / KindCollection.
	Resource string

	GetText func(entity any) *string
	SetText func(entity any, v *string)

	GetInt func(entity any) *int
	SetInt func(entity any, v *int)

	GetBool func(entity any) *bool
	SetBool func(entity any, v *bool)

	// KindEntity. SetRef wajib sinkron dengan kolom FK-nya.
	GetRef func(entity any) any
	SetRef func(entity any, ref any)

	// KindCollection.
	Items  func(owner any) []any
	ItemID func(item any) int
	Add    func(owner, item any) // juga set sisi pemilik di item
	Remove func(owner, item any)

	// ParentField: nama field entity di schema anak yang menunjuk balik
	// ke pemilik collection ini (mis. "survey" pada Question). Elemen
	// payload yang tidak menyebut field itu tetap ter-link ke pemilik,
	// juga pada full binding.
	ParentField string
}

// Preload mendeskripsikan relasi yang ikut dimuat saat baca,
// dengan urutan eksplisit bila schema mendeklarasikan field order.
type Preload struct {
	Name  string
	Order string // klausa ORDER BY, kosong = urutan natural storage
}

// Schema memetakan satu nama resource ke bentuk storage-nya dan
// daftar field binding-nya. Dibangun sekali saat startup.
type Schema struct {
	Resource string
	IDColumn string // nama kolom primary key, mis. "id_survey"
	IDField  string // key id di payload, mis. "idSurvey"

	New   func() any             // instance kosong (pointer ke model)
	Slice func() any             // pointer ke slice kosong, untuk FindAll
	Len   func(slicePtr any) int // panjang hasil FindAll
	IDOf  func(entity any) int

	Fields   []FieldBinding
	Preloads []Preload

	// Referential: lookup statis (di-seed), tidak lewat pipeline CRUD.
	Referential bool
}

func (s *Schema) fieldByName(name string) *FieldBinding {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}
