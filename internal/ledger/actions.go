package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrDuplicatePerson = errors.New("person already exists")
	ErrUnknownPerson   = errors.New("person not found")
	ErrUnknownExpense  = errors.New("expense not found")
)

// Action is a state transition on a ledger.
type Action interface {
	apply(l models.Ledger) (models.Ledger, error)
}

// Apply returns the ledger that results from applying a to l.
// l itself is left untouched. On error the returned ledger is l.
func Apply(l models.Ledger, a Action) (models.Ledger, error) {
	next, err := a.apply(l.Clone())
	if err != nil {
		return l, err
	}
	return next, nil
}

// AddPerson adds a name to the roster.
// Names are trimmed and must be unique ignoring case.
type AddPerson struct {
	Name string
}

func (a AddPerson) apply(l models.Ledger) (models.Ledger, error) {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return l, ErrEmptyName
	}
	for _, p := range l.People {
		if strings.EqualFold(p, name) {
			return l, fmt.Errorf("%w: %s", ErrDuplicatePerson, p)
		}
	}
	l.People = append(l.People, name)
	return l, nil
}

// RemovePerson takes a name off the roster and out of every expense split.
// Expenses left without participants are dropped. Expenses the person paid
// stay, so their credit still counts.
type RemovePerson struct {
	Name string
}

func (a RemovePerson) apply(l models.Ledger) (models.Ledger, error) {
	if !l.HasPerson(a.Name) {
		return l, fmt.Errorf("%w: %s", ErrUnknownPerson, a.Name)
	}

	people := l.People[:0]
	for _, p := range l.People {
		if p != a.Name {
			people = append(people, p)
		}
	}
	l.People = people

	expenses := l.Expenses[:0]
	for _, e := range l.Expenses {
		split := e.SplitBetween[:0]
		for _, p := range e.SplitBetween {
			if p != a.Name {
				split = append(split, p)
			}
		}
		e.SplitBetween = split
		if e.CustomAmounts != nil {
			delete(e.CustomAmounts, a.Name)
		}
		if len(e.SplitBetween) == 0 {
			continue
		}
		expenses = append(expenses, e)
	}
	l.Expenses = expenses

	return l, nil
}

// AddExpense appends a validated expense to the log.
// The expense gets the next free ID and At as its date.
type AddExpense struct {
	Expense models.Expense
	At      time.Time
}

func (a AddExpense) apply(l models.Ledger) (models.Ledger, error) {
	e := a.Expense.Clone()
	e.ID = NextExpenseID(l.Expenses)
	e.Date = a.At
	l.Expenses = append(l.Expenses, e)
	return l, nil
}

// DeleteExpense removes an expense by ID.
type DeleteExpense struct {
	ID int64
}

func (a DeleteExpense) apply(l models.Ledger) (models.Ledger, error) {
	for i, e := range l.Expenses {
		if e.ID == a.ID {
			l.Expenses = append(l.Expenses[:i], l.Expenses[i+1:]...)
			return l, nil
		}
	}
	return l, fmt.Errorf("%w: %d", ErrUnknownExpense, a.ID)
}

// NextExpenseID returns one more than the largest ID in expenses, or 1.
func NextExpenseID(expenses []models.Expense) int64 {
	var maxID int64
	for _, e := range expenses {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}
