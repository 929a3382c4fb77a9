package translate

import (
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// german holds the de messages, keyed by their en-US format.
var german = map[string]string{
	"halted":                             "angehalten",
	"halt fault":                         "Haltfehler",
	"unknown opcode":                     "unbekannter Opcode",
	"game not running":                   "Spiel läuft nicht",
	"engine invariant violated":          "Invariante der Maschine verletzt",
	"ORG duplicated":                     "ORG doppelt",
	"address conflict":                   "Adresskonflikt",
	"address invalid":                    "Adresse ungültig",
	"label duplicated":                   "Marke doppelt",
	"operand missing":                    "Operand fehlt",
	"operand unexpected":                 "Operand unerwartet",
	"label %v missing":                   "Marke %v fehlt",
	"fault at %d: %v":                    "Fehler bei %d: %v",
	"fault at %d (%v): %v":               "Fehler bei %d (%v): %v",
	"line %d address %d: %v":             "Zeile %d Adresse %d: %v",
	"line %d address %d %v":              "Zeile %d Adresse %d %v",
	"address %d %v":                      "Adresse %d %v",
	"tape line %d: '%v' is not a number": "Bandzeile %d: '%v' ist keine Zahl",
	"image line %d: %v":                  "Abbildzeile %d: %v",
	"address out of range":               "Adresse außerhalb des Bereichs",
	"word out of range":                  "Wort außerhalb des Bereichs",
	"operand out of range":               "Operand außerhalb des Bereichs",

	"script has no spawn(frame, width, height) function": "Skript hat keine Funktion spawn(frame, width, height)",
	"spawn() must return an int row or an (x, y) tuple":  "spawn() muss eine Zeile (int) oder ein Tupel (x, y) liefern",
}

// register adds the translated messages to the default catalog.
func register() {
	catalogs := map[language.Tag]map[string]string{
		language.German: german,
	}

	for tag, messages := range catalogs {
		for key, msg := range messages {
			err := message.SetString(tag, key, msg)
			if err != nil {
				log.Printf("dodgevm: catalog %v: %q: %v", tag, key, err)
			}
		}
	}
}
