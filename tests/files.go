// Package tests fetches and caches the third-party test suites used by the
// emulator tests: the nes-test-roms collection, the per-opcode processor
// tests and the Klaus Dormann 6502 test binaries. Tests that need them are skipped when they can't be downloaded.
package tests

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"

	"dunes/emu/log"
)

var modTests = log.NewModule("tests")

const (
	testRomsURL  = "https://github.com/christopherpow/nes-test-roms/archive/refs/heads/master.zip"
	procTestsURL = "https://raw.githubusercontent.com/SingleStepTests/65x02/main/nes6502/v1/%02x.json"
	klausURL     = "https://raw.githubusercontent.com/Klaus2m5/6502_65C02_functional_tests/master/bin_files/%s"
)

// klausFiles are the assembled binaries and their listings, which give the
// address of the success trap.
var klausFiles = []string{
	"6502_functional_test.bin",
	"6502_functional_test.lst",
	"6502_interrupt_test.bin",
	"6502_interrupt_test.lst",
}

// suite is a test suite directory, fetched at most once per test binary.
type suite struct {
	dir   string
	fetch func(dest string) error

	once sync.Once
	path string
	err  error
}

var (
	testRoms  = suite{dir: "nes-test-roms", fetch: fetchTestRoms}
	procTests = suite{dir: "tomharte.processor.tests", fetch: fetchProcTests}
	klaus     = suite{dir: "klaus2m5.functional.tests", fetch: fetchKlaus}
)

// RomsPath returns the path of the nes-test-roms directory.
func RomsPath(tb testing.TB) string {
	tb.Helper()
	return testRoms.get(tb)
}

// TomHarteProcTestsPath returns the path of the directory containing the
// processor test files, named after the opcode, such as a9.json.
func TomHarteProcTestsPath(tb testing.TB) string {
	tb.Helper()
	return procTests.get(tb)
}

// KlausPath returns the path of the directory containing the Klaus Dormann
// test binaries and listings.
func KlausPath(tb testing.TB) string {
	tb.Helper()
	return klaus.get(tb)
}

func (s *suite) get(tb testing.TB) string {
	tb.Helper()

	s.once.Do(func() {
		_, file, _, _ := runtime.Caller(0)
		s.path = filepath.Join(filepath.Dir(file), s.dir)

		_, err := os.Stat(s.path)
		if !errors.Is(err, fs.ErrNotExist) {
			s.err = err
			return
		}
		tb.Logf("%s not found, downloading it", s.dir)

		// Fetch into a sibling directory so that an interrupted download
		// is never mistaken for a complete one.
		tmp, err := os.MkdirTemp(filepath.Dir(s.path), s.dir+".*")
		if err != nil {
			s.err = err
			return
		}
		if s.err = s.fetch(tmp); s.err != nil {
			os.RemoveAll(tmp)
			return
		}
		s.err = os.Rename(tmp, s.path)
	})

	if s.err != nil {
		tb.Skipf("%s unavailable: %v", s.dir, s.err)
	}
	return s.path
}

func get(url string, w io.Writer) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

func fetchTestRoms(dest string) error {
	zf, err := os.CreateTemp("", "nes-test-roms-*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(zf.Name())
	defer zf.Close()

	if err := get(testRomsURL, zf); err != nil {
		return err
	}
	if err := unzip(zf.Name(), dest); err != nil {
		return fmt.Errorf("unzip test roms: %w", err)
	}
	return nil
}

// fetchProcTests downloads the 256 processor test files, one per opcode.
func fetchProcTests(dest string) error {
	files := make(map[string]string, 256)
	for op := range 256 {
		name := fmt.Sprintf("%02x.json", op)
		files[name] = fmt.Sprintf(procTestsURL, op)
	}
	return fetchFiles(dest, files)
}

func fetchKlaus(dest string) error {
	files := make(map[string]string, len(klausFiles))
	for _, name := range klausFiles {
		files[name] = fmt.Sprintf(klausURL, name)
	}
	return fetchFiles(dest, files)
}

// fetchFiles downloads each url into dest/name, concurrently.
func fetchFiles(dest string, files map[string]string) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for name, url := range files {
		g.Go(func() error {
			f, err := os.Create(filepath.Join(dest, name))
			if err != nil {
				return err
			}
			if err := get(url, f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		})
	}
	return g.Wait()
}

// unzip extracts the archive into dest, dropping the top-level directory
// GitHub adds to archives.
func unzip(name, dest string) error {
	r, err := zip.OpenReader(name)
	if err != nil {
		return err
	}
	defer r.Close()

	nfiles := 0
	for _, f := range r.File {
		_, rel, ok := strings.Cut(f.Name, "/")
		if !ok || rel == "" || f.FileInfo().IsDir() {
			continue
		}
		rel = path.Clean(rel)
		if !filepath.IsLocal(rel) {
			return fmt.Errorf("%s: illegal file path", f.Name)
		}
		if err := unzipFile(f, filepath.Join(dest, filepath.FromSlash(rel))); err != nil {
			return err
		}
		nfiles++
	}

	modTests.InfoZ("unzipped").String("archive", filepath.Base(name)).Int("files", nfiles).End()
	return nil
}

func unzipFile(f *zip.File, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
