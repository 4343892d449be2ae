// Command tester drives a full scripted session against the engine:
// login, selection, a staleness race, a send with its echo, and logout.
// Useful for eyeballing the timing behavior without the interactive CLI.
package main

import (
	"fmt"
	"log"
	"time"

	"chatsim/domain"
	"chatsim/projection"
	"chatsim/runtime"
	"chatsim/services"
	"chatsim/session"
	"chatsim/sink"

	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	Email            string        `default:"demo@example.com"`
	LoadDelay        time.Duration `split_words:"true" default:"300ms"`
	EchoDelay        time.Duration `split_words:"true" default:"1s"`
	PresenceInterval time.Duration `split_words:"true" default:"15s"`
	LogLevel         string        `split_words:"true" default:"DEBUG"`
}

func main() {
	var config Config
	if err := envconfig.Process("tester", &config); err != nil {
		log.Fatalf("config error: %v", err)
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
	engine.RegisterSinks(timeline, sink.NewLogSink(logger))

	svc := services.NewChatService(engine)

	user, err := svc.Login(config.Email, "ignored")
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	fmt.Printf("logged in as %s\n", user.Name)

	// Staleness race: re-select before the first load lands. The log must
	// end up with Maria's transcript, never Alexey's.
	must(svc.SelectContact(1))
	must(svc.SelectContact(2))
	time.Sleep(config.LoadDelay + 50*time.Millisecond)
	contact, _ := svc.SelectedContact()
	fmt.Printf("active conversation: %s, %d messages\n", contact.Name, len(svc.Messages()))

	svc.SetDraftText("hello from the tester")
	must(svc.Send())
	fmt.Printf("sent, log length %d\n", len(svc.Messages()))

	time.Sleep(config.EchoDelay + 50*time.Millisecond)
	for _, msg := range svc.Messages() {
		fmt.Printf("[%s] %s: %s\n", msg.Time, msg.Sender, msg.Text)
	}

	svc.Logout()
	fmt.Println("logged out, done")
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
