package protection_test

import (
	"sync"
	"testing"

	"github.com/bloomwell/bloom/internal/app/protection"
	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

func testDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestConsume_UpToCap(t *testing.T) {
	svc := protection.NewService(testDB(t), domain.DefaultMonthlyProtectionCap)

	for i := 0; i < domain.DefaultMonthlyProtectionCap; i++ {
		ok, err := svc.Consume("missed a day")
		if err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("consume %d denied before cap reached", i)
		}
	}

	ok, err := svc.Consume("one too many")
	if err != nil {
		t.Fatalf("consume over cap: %v", err)
	}
	if ok {
		t.Error("consume succeeded past the monthly cap")
	}
}

func TestConsume_RemainingCounts(t *testing.T) {
	svc := protection.NewService(testDB(t), 3)

	remaining, err := svc.RemainingThisMonth()
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if remaining != 3 {
		t.Errorf("expected 3 remaining on fresh month, got %d", remaining)
	}

	_, _ = svc.Consume("")
	_, _ = svc.Consume("")

	remaining, err = svc.RemainingThisMonth()
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if remaining != 1 {
		t.Errorf("expected 1 remaining after two uses, got %d", remaining)
	}
}

func TestConsume_ConcurrentNeverOverspends(t *testing.T) {
	const quota = 3
	const workers = 20

	svc := protection.NewService(testDB(t), quota)

	var wg sync.WaitGroup
	granted := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := svc.Consume("race")
			if err != nil {
				t.Errorf("consume: %v", err)
				return
			}
			granted <- ok
		}()
	}
	wg.Wait()
	close(granted)

	succeeded := 0
	for ok := range granted {
		if ok {
			succeeded++
		}
	}
	if succeeded != quota {
		t.Errorf("expected exactly %d grants under contention, got %d", quota, succeeded)
	}

	usages, err := svc.UsagesThisMonth()
	if err != nil {
		t.Fatalf("usages: %v", err)
	}
	if len(usages) != quota {
		t.Errorf("expected %d recorded usages, got %d", quota, len(usages))
	}
}

func TestUsages_RecordReason(t *testing.T) {
	svc := protection.NewService(testDB(t), 3)

	if _, err := svc.Consume("sick day"); err != nil {
		t.Fatalf("consume: %v", err)
	}

	usages, err := svc.UsagesThisMonth()
	if err != nil {
		t.Fatalf("usages: %v", err)
	}
	if len(usages) != 1 {
		t.Fatalf("expected 1 usage, got %d", len(usages))
	}
	if usages[0].Reason != "sick day" {
		t.Errorf("expected reason preserved, got %q", usages[0].Reason)
	}
}
