// internals/resource/errors.go
package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound: nama resource tidak terdaftar di registry.
	// Ini configuration error, bukan kesalahan user.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrMalformedPayload: body request bukan JSON object yang valid.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrNotFound: entity dengan id tersebut tidak ada.
	ErrNotFound = errors.New("entity not found")
)

// StorageError membungkus kegagalan flush/commit (constraint violation,
// koneksi putus). Tidak di-retry di sini.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage failure: %v", e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// InvalidFormError dikembalikan saat satu atau lebih field gagal validasi.
// Membawa form tree supaya controller bisa ambil report-nya.
type InvalidFormError struct {
	Form *Form
}

func (e *InvalidFormError) Error() string { return "invalid data" }

// Report menghasilkan error report bersarang yang bentuknya mengikuti
// struktur payload (lihat Form.ErrorMessages).
func (e *InvalidFormError) Report() map[string]any { return e.Form.ErrorMessages() }
