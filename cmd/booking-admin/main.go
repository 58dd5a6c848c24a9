package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"booking-server/client"
	"booking-server/entities"
)

const defaultServerURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	statusStyles = map[string]lipgloss.Style{
		entities.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		entities.StatusConfirmed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		entities.StatusCancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		entities.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	}
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoadingBookings
	stepBrowsing
)

type model struct {
	step         step
	api          *client.Client
	session      *client.Session
	email        string
	password     string
	currentInput string
	bookings     []entities.Booking
	unread       int
	cursor       int
	message      string
	quitting     bool
}

type loginSuccessMsg struct {
	session *client.Session
}

type bookingsLoadedMsg struct {
	bookings []entities.Booking
	unread   int
}

type bookingUpdatedMsg struct {
	booking *entities.Booking
}

type apiErrorMsg struct {
	err error
}

func initialModel(api *client.Client) model {
	return model{step: stepEnteringEmail, api: api}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) login() tea.Cmd {
	email, password := m.email, m.password
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		session, err := m.api.Login(ctx, email, password)
		if err != nil {
			return apiErrorMsg{err: err}
		}
		return loginSuccessMsg{session: session}
	}
}

func (m model) loadBookings() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		bookings, err := m.api.Bookings(ctx)
		if err != nil {
			return apiErrorMsg{err: err}
		}
		_, unread, err := m.api.Notifications(ctx)
		if err != nil {
			unread = 0
		}
		return bookingsLoadedMsg{bookings: bookings, unread: unread}
	}
}

func (m model) setStatus(id, status string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		booking, err := m.api.UpdateBookingStatus(ctx, id, status)
		if err != nil {
			return apiErrorMsg{err: err}
		}
		return bookingUpdatedMsg{booking: booking}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginSuccessMsg:
		if !msg.session.User.IsAdmin() {
			m.step = stepEnteringEmail
			m.currentInput = ""
			m.message = "That account is not an admin"
			return m, nil
		}
		m.session = msg.session
		m.step = stepLoadingBookings
		m.message = ""
		return m, m.loadBookings()

	case bookingsLoadedMsg:
		m.bookings = msg.bookings
		m.unread = msg.unread
		m.step = stepBrowsing
		if m.cursor >= len(m.bookings) {
			m.cursor = 0
		}
		return m, nil

	case bookingUpdatedMsg:
		for i := range m.bookings {
			if m.bookings[i].ID == msg.booking.ID {
				m.bookings[i] = *msg.booking
			}
		}
		m.message = successStyle.Render(fmt.Sprintf("Booking set to %s", msg.booking.Status))
		return m, nil

	case apiErrorMsg:
		m.message = errorStyle.Render(msg.err.Error())
		switch m.step {
		case stepLoggingIn:
			m.step = stepEnteringEmail
			m.currentInput = ""
		case stepLoadingBookings:
			m.step = stepBrowsing
		}
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case stepEnteringEmail, stepEnteringPassword:
		return m.handleInputKey(msg)

	case stepBrowsing:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.bookings)-1 {
				m.cursor++
			}
		case "r":
			m.step = stepLoadingBookings
			m.message = ""
			return m, m.loadBookings()
		case "c":
			if b := m.selected(); b != nil {
				return m, m.setStatus(b.ID, entities.StatusConfirmed)
			}
		case "d":
			if b := m.selected(); b != nil {
				return m, m.setStatus(b.ID, entities.StatusCompleted)
			}
		case "x":
			if b := m.selected(); b != nil {
				return m, m.setStatus(b.ID, entities.StatusCancelled)
			}
		}
	}

	return m, nil
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.step == stepEnteringEmail {
			m.email = strings.TrimSpace(m.currentInput)
			m.currentInput = ""
			m.step = stepEnteringPassword
			return m, nil
		}
		m.password = m.currentInput
		m.currentInput = ""
		m.step = stepLoggingIn
		return m, m.login()
	case tea.KeyBackspace:
		if len(m.currentInput) > 0 {
			m.currentInput = m.currentInput[:len(m.currentInput)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.currentInput += string(msg.Runes)
	}
	return m, nil
}

func (m model) selected() *entities.Booking {
	if m.cursor < 0 || m.cursor >= len(m.bookings) {
		return nil
	}
	return &m.bookings[m.cursor]
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Booking Admin Console"))
	b.WriteString("\n")

	switch m.step {
	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Admin email: "))
		b.WriteString(m.currentInput)
	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(strings.Repeat("*", len(m.currentInput)))
	case stepLoggingIn:
		b.WriteString("Logging in...")
	case stepLoadingBookings:
		b.WriteString("Loading bookings...")
	case stepBrowsing:
		b.WriteString(fmt.Sprintf("Signed in as %s | %d unread notifications\n\n",
			m.session.User.Name, m.unread))
		if len(m.bookings) == 0 {
			b.WriteString(normalStyle.Render("No bookings yet"))
		}
		for i, booking := range m.bookings {
			line := fmt.Sprintf("%s  %s %s  %s  [%s]",
				booking.Service, booking.Date, booking.TimeSlot,
				booking.UserID,
				statusStyles[booking.Status].Render(booking.Status))
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(normalStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(normalStyle.Render("c confirm | d complete | x cancel | r refresh | q quit"))
	}

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(m.message)
	}
	b.WriteString("\n")
	return b.String()
}

func main() {
	serverURL := os.Getenv("BOOKING_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	p := tea.NewProgram(initialModel(client.New(serverURL)))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
