package seed

import (
	"testing"

	dom "github.com/BenLittle1/orggraph-api/internal/domain"
)

func TestTreeLoads(t *testing.T) {
	cats, err := Tree()
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("no categories in seed tree")
	}

	seen := map[int64]bool{}
	tasks := 0
	for _, c := range cats {
		if c.Name == "" {
			t.Fatalf("category %d has empty name", c.ID)
		}
		total := 0
		for _, sc := range c.Subcategories {
			for _, task := range sc.Tasks {
				if seen[task.ID] {
					t.Fatalf("duplicate task id %d", task.ID)
				}
				seen[task.ID] = true
				if !task.Status.Valid() || !task.Priority.Valid() {
					t.Fatalf("task %d has invalid status/priority", task.ID)
				}
				total++
			}
		}
		if c.TotalTasks != total {
			t.Fatalf("category %d TotalTasks = %d, want %d", c.ID, c.TotalTasks, total)
		}
		tasks += total
	}
	if tasks != 58 {
		t.Fatalf("seed tree has %d tasks, want 58", tasks)
	}
}

func TestTreeContainsKnownTask(t *testing.T) {
	cats, err := Tree()
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	for _, c := range cats {
		for _, sc := range c.Subcategories {
			for _, task := range sc.Tasks {
				if task.ID == 5 {
					if task.Status != dom.StatusInProgress {
						t.Fatalf("task 5 status = %s, want in_progress", task.Status)
					}
					return
				}
			}
		}
	}
	t.Fatal("task 5 not present in seed tree")
}

func TestTeamLoads(t *testing.T) {
	roster, err := Team()
	if err != nil {
		t.Fatalf("Team: %v", err)
	}
	if len(roster.Members) != roster.TotalMembers {
		t.Fatalf("member count %d does not match stored total %d", len(roster.Members), roster.TotalMembers)
	}
	active := 0
	byID := map[string]dom.TeamMember{}
	for _, m := range roster.Members {
		if m.ID == "" || m.Name == "" {
			t.Fatalf("member %+v missing id or name", m)
		}
		if _, dup := byID[m.ID]; dup {
			t.Fatalf("duplicate member id %s", m.ID)
		}
		byID[m.ID] = m
		if m.IsActive {
			active++
		}
	}
	if active != roster.ActiveMembers {
		t.Fatalf("active count %d does not match stored total %d", active, roster.ActiveMembers)
	}
	if m, ok := byID["tm-002"]; !ok || m.Name != "Jack Fan" {
		t.Fatalf("tm-002 = %+v, want Jack Fan", m)
	}
}

func TestAssignmentsReferToKnownMembers(t *testing.T) {
	table, err := Assignments()
	if err != nil {
		t.Fatalf("Assignments: %v", err)
	}
	if len(table) == 0 {
		t.Fatal("assignment table is empty")
	}
	roster, err := Team()
	if err != nil {
		t.Fatalf("Team: %v", err)
	}
	known := map[string]bool{}
	for _, m := range roster.Members {
		known[m.ID] = true
	}
	for id := range table {
		if !known[id] {
			t.Fatalf("assignment table references unknown member %s", id)
		}
	}
}
