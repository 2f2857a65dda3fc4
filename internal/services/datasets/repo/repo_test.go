package repo

import (
	"testing"

	"exposure/internal/core/agg"
	"exposure/internal/core/tabular"
	perr "exposure/internal/platform/errors"
	"exposure/internal/services/datasets/domain"
)

func dataset(hash string) *domain.Dataset {
	t := tabular.New([]string{"Policy_Number"})
	t.AppendRow([]tabular.Cell{tabular.StringCell("P-1")})
	return &domain.Dataset{Name: "book.xlsx", ContentHash: hash, Table: t}
}

func TestPutDeduplicatesByContentHash(t *testing.T) {
	s := NewMemory()

	a := s.Put(dataset("aaa"))
	if a.ID == "" {
		t.Fatalf("no id assigned")
	}
	b := s.Put(dataset("aaa"))
	if b.ID != a.ID {
		t.Fatalf("identical content produced a second session: %s vs %s", a.ID, b.ID)
	}
	c := s.Put(dataset("bbb"))
	if c.ID == a.ID {
		t.Fatalf("distinct content reused a session id")
	}
	if got := s.Stats(); got.Datasets != 2 {
		t.Fatalf("stats = %+v", got)
	}
}

func TestGetAndDelete(t *testing.T) {
	s := NewMemory()
	ds := s.Put(dataset("aaa"))

	got, err := s.Get(ds.ID)
	if err != nil || got.ID != ds.ID {
		t.Fatalf("Get: %v %v", got, err)
	}
	if _, err := s.Get("nope"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing id: %v", err)
	}

	if err := s.Delete(ds.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ds.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("double delete: %v", err)
	}

	// hash index released: same content loads fresh
	again := s.Put(dataset("aaa"))
	if again.ID == ds.ID {
		t.Fatalf("deleted session id resurrected")
	}
}

func TestRiskLookup(t *testing.T) {
	s := NewMemory()
	if s.Risk() != nil {
		t.Fatalf("fresh store should have no risk lookup")
	}
	if s.Stats().RiskLoaded {
		t.Fatalf("stats should report no risk lookup")
	}
	s.SetRisk(domain.RiskLookup{"TX": agg.RiskEntry{Tier: "High", Score: 9}})
	if got := s.Risk(); got["TX"].Tier != "High" {
		t.Fatalf("risk = %+v", got)
	}
	if !s.Stats().RiskLoaded {
		t.Fatalf("stats should report the lookup")
	}
}
