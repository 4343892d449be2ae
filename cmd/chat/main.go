package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chatsim/domain"
	"chatsim/internal"
	"chatsim/projection"
	"chatsim/runtime"
	"chatsim/services"
	"chatsim/session"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	sess := session.New(domain.SeedRoster())
	engine := runtime.NewEngine(logger, sess, runtime.NewScheduler(), runtime.Options{
		LoadDelay:        config.LoadDelay,
		EchoDelay:        config.EchoDelay,
		PresenceInterval: config.PresenceInterval,
	})
	defer engine.Shutdown()

	timeline := projection.NewTimeline()
	engine.RegisterSinks(timeline)

	svc := services.NewChatService(engine)

	fmt.Println("chatsim - type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return exitOK, scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "help":
			printHelp()
		case "login":
			email, password, _ := strings.Cut(arg, " ")
			user, err := svc.Login(email, password)
			if err != nil {
				color.Red.Printf("login failed: %v\n", err)
				continue
			}
			color.Green.Printf("welcome %s (%s)\n", user.Name, user.Email)
		case "logout":
			svc.Logout()
			fmt.Println("logged out")
		case "list":
			renderRoster(svc.Roster(), svc)
		case "filter":
			renderRoster(svc.FilterContacts(arg), svc)
		case "select":
			id, err := strconv.Atoi(arg)
			if err != nil {
				color.Red.Println("usage: select <contact id>")
				continue
			}
			if err := svc.SelectContact(domain.ContactID(id)); err != nil {
				color.Red.Printf("select failed: %v\n", err)
				continue
			}
			fmt.Println("conversation loading...")
		case "text":
			svc.SetDraftText(arg)
		case "attach":
			att, err := svc.SelectFile(arg)
			if err != nil {
				color.Red.Printf("attach failed: %v\n", err)
				continue
			}
			fmt.Printf("staged %s (%s)\n", att.Name, att.MIME)
		case "clearfile":
			svc.ClearAttachment()
		case "send":
			if err := svc.Send(); err != nil {
				color.Red.Printf("send failed: %v\n", err)
			}
		case "messages":
			renderConversation(timeline)
		case "quit", "exit":
			return exitOK, nil
		default:
			color.Yellow.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  login <email> [password]  start a session
  logout                    end the session
  list                      show the contact roster
  filter <query>            filter contacts by name
  select <id>               open a conversation
  text <message>            set the draft text
  attach <path>             stage a file attachment
  clearfile                 drop the staged attachment
  send                      send the draft
  messages                  show the active conversation
  quit                      leave`)
}

func renderRoster(contacts []domain.Contact, svc services.IChatService) {
	selected, hasSelection := svc.SelectedContact()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Status", "Avatar"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, c := range contacts {
		status := color.Gray.Render(string(c.Status))
		if c.Status == domain.PresenceOnline {
			status = color.Green.Render(string(c.Status))
		}
		name := c.Name
		if hasSelection && c.ID == selected.ID {
			name = color.Bold.Render(name)
		}
		table.Append([]string{strconv.Itoa(int(c.ID)), name, status, c.Avatar})
	}
	table.Render()
}

func renderConversation(timeline *projection.Timeline) {
	switch timeline.Phase() {
	case projection.ViewNoSelection:
		fmt.Println("no conversation selected")
		return
	case projection.ViewLoading:
		fmt.Println("loading...")
		return
	}

	contact := timeline.Contact()
	fmt.Printf("--- %s (%s) ---\n", contact.Name, contact.Status)
	for _, msg := range timeline.Messages() {
		who := color.Cyan.Render(contact.Name)
		if msg.Sender == domain.SenderMe {
			who = color.Green.Render("me")
		}
		line := fmt.Sprintf("[%s] %s: %s", msg.Time, who, msg.Text)
		if msg.Attachment != nil {
			line += fmt.Sprintf(" (file: %s, %s)", msg.Attachment.Name, msg.Attachment.MIME)
		}
		fmt.Println(line)
	}
}
