package utils

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// NormalizePage clamps page and pageSize into their allowed ranges instead
// of rejecting out-of-range values. An absent pageSize is resolved to
// DefaultPageSize by the caller before this runs; an explicit value below 1
// is clamped to 1, not replaced by the default.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Offset returns the row offset for a normalized page/pageSize pair.
func Offset(page, pageSize int) uint64 {
	return uint64((page - 1) * pageSize)
}

// TotalPages returns ceil(total/pageSize).
func TotalPages(total uint64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + uint64(pageSize) - 1) / uint64(pageSize))
}
