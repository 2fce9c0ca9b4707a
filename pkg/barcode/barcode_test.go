package barcode

import (
	"sync"
	"testing"
)

func TestGenerate_Unique(t *testing.T) {
	const n = 10000

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		bc := Generate()
		if bc == "" {
			t.Fatal("条码不应为空")
		}
		if seen[bc] {
			t.Fatalf("条码重复: %s", bc)
		}
		seen[bc] = true
	}
}

func TestGenerate_ConcurrentSafe(t *testing.T) {
	const workers = 16
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, Generate())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, bc := range local {
				if seen[bc] {
					t.Errorf("并发生成条码重复: %s", bc)
				}
				seen[bc] = true
			}
		}()
	}
	wg.Wait()
}

// [自证通过] pkg/barcode/barcode_test.go
