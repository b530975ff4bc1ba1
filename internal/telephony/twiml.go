package telephony

import (
	"fmt"
	"time"

	"github.com/twilio/twilio-go/twiml"
)

const gatherScript = "Hi, this is Meetline, calling to schedule your meeting. " +
	"Please say one time that works for you in the requested window, " +
	"or press 1 for the earliest available time, " +
	"2 for a later time in the window, and then wait."

const noInputScript = "If I did not get your availability, we will follow up by message. Goodbye."

// GreetingTwiML opens the call with a speech-and-keypad gather that posts
// to the gather webhook.
func GreetingTwiML(gatherAction string) (string, error) {
	gather := &twiml.VoiceGather{
		Input:     "speech dtmf",
		Action:    gatherAction,
		Method:    "POST",
		Timeout:   "6",
		NumDigits: "1",
		InnerElements: []twiml.Element{
			&twiml.VoiceSay{Message: gatherScript},
		},
	}

	return twiml.Voice([]twiml.Element{
		gather,
		&twiml.VoiceSay{Message: noInputScript},
	})
}

// ConfirmationTwiML reads back the first recorded window in the lead's
// timezone.
func ConfirmationTwiML(firstStart time.Time, timezone string) (string, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	friendly := firstStart.In(loc).Format("Monday January 02 at 15:04")

	message := fmt.Sprintf(
		"Great. I have recorded that you are available on %s. "+
			"We will confirm the final meeting time shortly. Goodbye.", friendly)

	return twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: message},
	})
}

// GoodbyeTwiML ends the call with a single spoken message.
func GoodbyeTwiML(message string) (string, error) {
	return twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: message},
	})
}
