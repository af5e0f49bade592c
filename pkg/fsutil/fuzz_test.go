package fsutil_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yaklabco/humorlint/pkg/fsutil"
)

func FuzzWriteThenRead(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("import x\nreturn y\n"))
	f.Add([]byte("line\r\nwith crlf\r\n"))
	f.Add([]byte("\x00\x01\x02\x03"))
	f.Add(make([]byte, 1024))

	f.Fuzz(func(t *testing.T, content []byte) {
		path := filepath.Join(t.TempDir(), "post.txt")

		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, content, 0o644); err != nil {
			t.Fatalf("WriteAtomic failed: %v", err)
		}

		got, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}

		if string(got) != string(content) {
			t.Errorf("content mismatch: got %d bytes, want %d", len(got), len(content))
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}
	})
}
