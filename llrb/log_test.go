package llrb

import "os"
import "strings"
import "testing"
import "sync/atomic"
import "path/filepath"

import "github.com/bnclabs/llrbmap/lib"
import "github.com/bnclabs/llrbmap/log"

func TestLogComponents(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "llrb_test.log")
	log.SetLogger(nil, lib.Settings{"log.level": "debug", "log.file": logfile})
	defer log.SetLogger(nil, nil)

	LogComponents("llrb")
	defer atomic.StoreInt64(&logok, 0)

	llrb := NewLLRB[int, int]("logging", nil)
	for i := 0; i < 10; i++ {
		llrb.Set(i, i)
	}
	if err := llrb.Validate(); err != nil {
		t.Fatal(err)
	}
	newllrb := llrb.Clone("logclone")
	newllrb.Destroy()
	llrb.Destroy()

	data, err := os.ReadFile(logfile)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	refs := []string{
		"LLRB [logging] started",
		"LLRB [logging] Validate(): ok for 10 entries",
		"LLRB [logclone] cloned 10 nodes",
		"LLRB [logclone] destroying 10 entries",
		"LLRB [logging] destroyed",
	}
	for _, ref := range refs {
		if !strings.Contains(out, ref) {
			t.Errorf("expected %q in %q", ref, out)
		}
	}
}
