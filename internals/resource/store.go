// internals/resource/store.go
package resource

import (
	"errors"

	"gorm.io/gorm"
)

// Store adalah batas persistence: baca lewat FindByID/FindAll,
// tulis lewat UnitOfWork yang di-commit sekali oleh Flush.
type Store struct {
	DB       *gorm.DB
	Registry *Registry
}

func NewStore(db *gorm.DB, reg *Registry) *Store {
	return &Store{DB: db, Registry: reg}
}

func (s *Store) withPreloads(q *gorm.DB, sc *Schema) *gorm.DB {
	for _, p := range sc.Preloads {
		if p.Order != "" {
			order := p.Order
			q = q.Preload(p.Name, func(db *gorm.DB) *gorm.DB { return db.Order(order) })
		} else {
			q = q.Preload(p.Name)
		}
	}
	return q
}

func (s *Store) FindByID(resourceName string, id int) (any, error) {
	sc, err := s.Registry.Lookup(resourceName)
	if err != nil {
		return nil, err
	}
	return s.findByIDOn(s.DB, sc, id)
}

// findByIDOn membaca lewat handle yang diberikan, bisa pool biasa atau
// transaksi yang sedang berjalan. Baca di dalam Flush wajib lewat tx-nya.
func (s *Store) findByIDOn(db *gorm.DB, sc *Schema, id int) (any, error) {
	dest := sc.New()
	q := s.withPreloads(db, sc)
	if err := q.First(dest, sc.IDColumn+" = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Err: err}
	}
	return dest, nil
}

// FindAll membaca semua baris resource dengan criteria sederhana.
// Satu-satunya criteria yang didukung adalah "active", dan match-nya
// memang substring (LIKE %v%) terhadap nilai tersimpan — perilaku
// warisan schema lama yang dipertahankan apa adanya. Kolom boolean
// di-cast ke text supaya LIKE jalan di postgres maupun sqlite.
func (s *Store) FindAll(resourceName string, criteria map[string]string, limit int) (any, int, error) {
	sc, err := s.Registry.Lookup(resourceName)
	if err != nil {
		return nil, 0, err
	}

	dest := sc.Slice()
	q := s.withPreloads(s.DB, sc)
	for key, value := range criteria {
		if key == "active" {
			q = q.Where("CAST(is_active AS TEXT) LIKE ?", "%"+value+"%")
		}
		// criteria lain diabaikan
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(dest).Error; err != nil {
		return nil, 0, &StorageError{Err: err}
	}
	return dest, sc.Len(dest), nil
}

// FindLatest: listing "terbaru dulu" berdasarkan kolom timestamp.
func (s *Store) FindLatest(resourceName string, maxCount, offset int) (any, int, error) {
	sc, err := s.Registry.Lookup(resourceName)
	if err != nil {
		return nil, 0, err
	}
	if maxCount <= 0 {
		maxCount = 20
	}

	dest := sc.Slice()
	q := s.withPreloads(s.DB, sc).
		Order("updated DESC").
		Order("created DESC").
		Limit(maxCount).
		Offset(offset)
	if err := q.Find(dest).Error; err != nil {
		return nil, 0, &StorageError{Err: err}
	}
	return dest, sc.Len(dest), nil
}

func (s *Store) NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{store: s}
}

type pendingOp struct {
	resource string
	entity   any
}

// UnitOfWork menampung operasi tulis satu request. Persist/Save/Remove
// hanya menandai; tidak ada yang menyentuh database sampai Flush.
// Kalau validasi gagal, unit of work dibuang begitu saja — tidak ada
// partial write.
type UnitOfWork struct {
	store   *Store
	inserts []pendingOp
	updates []pendingOp
	deletes []pendingOp
}

func (u *UnitOfWork) Persist(resourceName string, entity any) {
	u.inserts = append(u.inserts, pendingOp{resource: resourceName, entity: entity})
}

func (u *UnitOfWork) Save(resourceName string, entity any) {
	u.updates = append(u.updates, pendingOp{resource: resourceName, entity: entity})
}

func (u *UnitOfWork) Remove(resourceName string, entity any) {
	u.deletes = append(u.deletes, pendingOp{resource: resourceName, entity: entity})
}

// Flush meng-commit semua operasi tertunda sebagai satu transaksi.
// Urutan: delete dulu (anak collection yang dilepas), lalu insert,
// lalu update. Gagal di tengah berarti rollback total.
func (u *UnitOfWork) Flush() error {
	if len(u.inserts) == 0 && len(u.updates) == 0 && len(u.deletes) == 0 {
		return nil
	}

	err := u.store.DB.Transaction(func(tx *gorm.DB) error {
		for _, op := range u.deletes {
			if err := u.deleteCascade(tx, op.resource, op.entity); err != nil {
				return err
			}
		}
		for _, op := range u.inserts {
			if err := tx.Create(op.entity).Error; err != nil {
				return err
			}
		}
		for _, op := range u.updates {
			if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).
				Save(op.entity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &StorageError{Err: err}
	}

	u.inserts, u.updates, u.deletes = nil, nil, nil
	return nil
}

// deleteCascade menghapus entity beserta anak collection-nya, rekursif
// mengikuti schema (pemilik menghapus yang dimiliki: Survey→Question→
// Response, Test→Decision).
func (u *UnitOfWork) deleteCascade(tx *gorm.DB, resourceName string, entity any) error {
	sc, err := u.store.Registry.Lookup(resourceName)
	if err != nil {
		return err
	}

	// Entity yang masuk lewat Remove bisa belum ter-preload. Reload
	// sekali saja, dan lewat tx: baca lewat store.DB dari dalam
	// transaksi Flush keluar dari isolasinya (dan di pool satu koneksi
	// menunggu koneksi yang dipegang tx itu sendiri).
	reloaded := false
	for i := range sc.Fields {
		f := &sc.Fields[i]
		if f.Kind != KindCollection {
			continue
		}
		items := f.Items(entity)
		if len(items) == 0 && !reloaded {
			reloaded = true
			loaded, err := u.store.findByIDOn(tx, sc, sc.IDOf(entity))
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			entity = loaded
			items = f.Items(entity)
		}
		for _, item := range items {
			if err := u.deleteCascade(tx, f.Resource, item); err != nil {
				return err
			}
		}
	}

	return tx.Delete(entity).Error
}
