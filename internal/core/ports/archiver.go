package ports

// Archiver turns a bundle directory into a deterministic archive with a
// content digest.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Zip archives the bundle at path deterministically: identical bundle
	// content always yields identical archive bytes.
	Zip(bundlePath string) (string, error)

	// Checksum streams the file at path and returns its lowercase hex
	// digest. The file is never loaded into memory at once.
	Checksum(path string) (string, error)
}
