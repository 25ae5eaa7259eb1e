package workers

import (
	"context"
	"testing"
)

func TestJobTitles(t *testing.T) {
	workers := []Worker{
		{FirstName: "Jane", LastName: "Doe", Position: "Server"},
		{FirstName: "John", LastName: "Smith", Position: "Cook"},
		{FirstName: "Eve", LastName: "Miller", Position: "Server"},
		{FirstName: "Tom", LastName: "Nowak", Position: ""},
	}

	titles := JobTitles(workers)

	if len(titles) != 2 {
		t.Fatalf("expected 2 job titles, got %d", len(titles))
	}

	if titles[0] != "Cook" || titles[1] != "Server" {
		t.Errorf("expected sorted titles [Cook Server], got %v", titles)
	}
}

func TestDirectoryCacheMemory(t *testing.T) {
	c, err := NewDirectoryCacheMemory()
	if err != nil {
		t.Fatal(err)
	}

	entry := &DirectoryCacheEntry{
		Workers:   []Worker{{FirstName: "Jane", LastName: "Doe", Position: "Server"}},
		JobTitles: []string{"Server"},
	}

	err = c.Add(context.TODO(), "manager-1", entry)
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.Get(context.TODO(), "manager-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Workers) != 1 || got.JobTitles[0] != "Server" {
		t.Error("cache returned a different entry than was added")
	}

	err = c.Invalidate(context.TODO(), "manager-1")
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Get(context.TODO(), "manager-1")
	if err == nil {
		t.Error("expected a miss after invalidation")
	}
}

func TestMockWorkerRepositoryScoping(t *testing.T) {
	repo := &MockWorkerRepository{}

	err := repo.Add(context.TODO(), &Worker{ManagerID: "m1", FirstName: "Jane", LastName: "Doe", Position: "Server"})
	if err != nil {
		t.Fatal(err)
	}
	err = repo.Add(context.TODO(), &Worker{ManagerID: "m2", FirstName: "John", LastName: "Smith", Position: "Cook"})
	if err != nil {
		t.Fatal(err)
	}

	workers, err := repo.FindAllByManager(context.TODO(), "m1")
	if err != nil {
		t.Fatal(err)
	}

	if len(workers) != 1 || workers[0].FirstName != "Jane" {
		t.Errorf("expected only m1 workers, got %v", workers)
	}
}
