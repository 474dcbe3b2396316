package skill

// Canned speech for every fixed response path.
const (
	msgWelcome = "Welcome to MKE Flavors!  You can ask what is the flavor at a particular location, " +
		"or what are the flavors near me.  What would you like to ask?"
	msgWhatDoYouWant            = "What do you want to ask?"
	msgNotifyMissingPermissions = "Sorry, it looks like you have not allowed Milwaukee Flavors to access " +
		"your location.  Please enable Location permissions in the Amazon Alexa app."
	msgNoAddress = "Sorry, it looks like you don't have an address set. " +
		"You can set your address from the Alexa app."
	msgError           = "Uh Oh. Looks like something went wrong."
	msgLocationFailure = "Sorry, it looks like we weren't able to determine your location. Please try again."
	msgUnhandled       = "Sorry, This skill doesn't support that. Please ask something else. " +
		"For a list of supported commands, say help"
	msgHelp            = "You can say, what is the flavor at a particular location, or what are the closest locations"
	msgStop            = "Thanks for using MKE Flavors! Bye!"
	msgGoodbye         = "Thanks for using MKE Flavors! Bye!"
	msgInvalidLocation = "Sorry, this skill does not support your location.  This skill provides flavors " +
		"for Milwaukee area frozen custard locations.  Thank you for using MKE Flavors.  Bye!"
	msgRetryLocation = "Sorry, we didn't catch the location name.  Please try again."
	msgClosestIntro  = "Here are the flavors of the day at the five locations closest to you. "
	msgAnythingElse  = ". What else can I help you with?"
)

// cardTitle heads the simple cards the skill attaches to flavor answers.
const cardTitle = "MKE Flavors"
