// Package seed provides the reference data the board starts from: the user
// roster and the initial task list.
package seed

import (
	"fmt"
	"time"

	"github.com/mistakeknot/tasklane/internal/tasklane/present"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

// Provider is the data-source contract the board consumes.
type Provider interface {
	ListUsers() []tasks.User
	ListTasks() []tasks.Task
	GetTask(id uint32) (tasks.Task, error)
}

// Data is a static Provider. Every call returns fresh copies.
type Data struct {
	Users []tasks.User
	Tasks []tasks.Task
}

func (d *Data) ListUsers() []tasks.User {
	return append([]tasks.User(nil), d.Users...)
}

func (d *Data) ListTasks() []tasks.Task {
	out := make([]tasks.Task, len(d.Tasks))
	for i, t := range d.Tasks {
		out[i] = t.Clone()
	}
	return out
}

// GetTask looks the id up in ListTasks, not in any live store, so tasks
// created after start-up are never found here.
func (d *Data) GetTask(id uint32) (tasks.Task, error) {
	for _, t := range d.ListTasks() {
		if t.ID == id {
			return t, nil
		}
	}
	return tasks.Task{}, fmt.Errorf("%w: id %d", tasks.ErrNotFound, id)
}

var (
	derik  = tasks.User{Name: "Derik", Image: "person1.png"}
	fatima = tasks.User{Name: "Fatima", Image: "person2.png"}
	john   = tasks.User{Name: "John", Image: "person3.png"}
	ilyana = tasks.User{Name: "Ilyana", Image: "person4.png"}
)

// Default returns the built-in roster and tasks with due dates relative to now.
func Default(now time.Time) *Data {
	today := present.NowMillis(now)
	in := func(days int) int64 { return present.AddDays(today, days) }
	return &Data{
		Users: []tasks.User{derik, fatima, john, ilyana},
		Tasks: []tasks.Task{
			{
				ID:          0,
				Name:        "Design login screen",
				Description: "Create a responsive login screen with email and password fields, 'Forgot Password' link, and a login button. Include basic validation and error handling.",
				DueDate:     in(5),
				AssignedTo:  []tasks.User{derik},
				Priority:    tasks.PriorityMedium,
				Status:      tasks.StatusPending,
			},
			{
				ID:          1,
				Name:        "Write unit tests for task API",
				Description: "Create unit tests for the task-related API endpoints, including task creation, status updates, and deletion. Use mock data and ensure edge cases are covered.",
				DueDate:     in(25),
				AssignedTo:  []tasks.User{derik, fatima, john},
				Priority:    tasks.PriorityHigh,
				Status:      tasks.StatusInProgress,
			},
			{
				ID:          2,
				Name:        "Implement product search with filters",
				Description: "Develop a product search feature that allows users to search by name, category, and price range. Include filter options such as 'In Stock', 'On Sale', and 'Free Shipping'.\n\nEnsure the results update dynamically as filters are applied.",
				DueDate:     in(45),
				AssignedTo:  []tasks.User{derik, ilyana},
				Priority:    tasks.PriorityLow,
				Status:      tasks.StatusNew,
			},
			{
				ID:          3,
				Name:        "Integrate payment gateway",
				Description: "Set up and integrate a payment gateway (e.g., Stripe or PayPal) to handle secure transactions during checkout. Implement payment validation, error handling, and confirmation messaging.\n\nEnsure the system can handle both test and live environments.",
				DueDate:     in(10),
				AssignedTo:  []tasks.User{derik},
				Priority:    tasks.PriorityMedium,
				Status:      tasks.StatusComplete,
			},
			{
				ID:          4,
				Name:        "Create order history page",
				Description: "Build a user-facing order history page that displays past purchases with order details, statuses, and tracking information. Include pagination and filtering by date or status.",
				DueDate:     today,
				AssignedTo:  []tasks.User{ilyana},
				Priority:    tasks.PriorityHigh,
				Status:      tasks.StatusPending,
			},
			{
				ID:          5,
				Name:        "Implement product review system",
				Description: "Allow users to leave reviews and ratings on products. Design the UI for submitting and displaying reviews, and create backend endpoints to store and fetch review data.\n\nInclude moderation capabilities to filter inappropriate content.",
				DueDate:     in(12),
				AssignedTo:  []tasks.User{john, ilyana},
				Priority:    tasks.PriorityLow,
				Status:      tasks.StatusInProgress,
				Comments: []tasks.Comment{
					{User: "John", Message: "Should reviews be visible to everyone immediately, or only after moderation?", Image: "person3.png"},
					{User: "Ilyana", Message: "Good question, I'll get back to you", Image: "person4.png"},
					{User: "John", Message: "Ok, thanks, I'll wait for your reply", Image: "person3.png"},
				},
			},
			{
				ID:          6,
				Name:        "Add wishlist functionality",
				Description: "Enable users to add products to a personal wishlist for future reference. Implement the UI for adding/removing items and a wishlist page to view saved products.\n\nEnsure the wishlist is saved per user and persists across sessions.",
				DueDate:     in(45),
				// Derik with Fatima's avatar is a distinct user by structural equality.
				AssignedTo: []tasks.User{{Name: "Derik", Image: "person2.png"}},
				Priority:   tasks.PriorityHigh,
				Status:     tasks.StatusInProgress,
			},
		},
	}
}
