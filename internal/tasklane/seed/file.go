package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/mistakeknot/tasklane/internal/tasklane/present"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
	"gopkg.in/yaml.v3"
)

type fileTask struct {
	tasks.Task `yaml:",inline"`
	DueInDays  *int `yaml:"due_in_days"`
}

type fileData struct {
	Users []tasks.User `yaml:"users"`
	Tasks []fileTask   `yaml:"tasks"`
}

// LoadFile reads a YAML fixture. A task's due_in_days, when present, wins
// over due_date and is resolved against now.
func LoadFile(path string, now time.Time) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw, now)
}

func Parse(raw []byte, now time.Time) (*Data, error) {
	var doc fileData
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	out := &Data{Users: doc.Users}
	seen := make(map[uint32]bool, len(doc.Tasks))
	for _, ft := range doc.Tasks {
		if seen[ft.ID] {
			return nil, fmt.Errorf("parse seed: %w: duplicate id %d", tasks.ErrInvalidTask, ft.ID)
		}
		seen[ft.ID] = true
		t := ft.Task
		if ft.DueInDays != nil {
			t.DueDate = present.AddDays(present.NowMillis(now), *ft.DueInDays)
		}
		out.Tasks = append(out.Tasks, t)
	}
	return out, nil
}
