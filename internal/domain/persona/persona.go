package persona

import "strings"

// Config is the fixed behavioral profile the assistant adopts for a
// conversation. The table is compiled into the service; nothing mutates it at
// runtime.
type Config struct {
	Key          string
	Name         string
	TextModel    string
	VisionModel  string
	SystemPrompt string

	// Deterministic substitutes used when the model call fails or returns
	// unusable output. FallbackRecorded acknowledges an extracted transaction;
	// FallbackGeneric offers help without one.
	FallbackRecorded string
	FallbackGeneric  string
}

// DefaultKey is the persona used when a conversation carries an unknown or
// empty persona value.
const DefaultKey = "wise_mentor"

var personas = map[string]Config{
	"wise_mentor": {
		Key:         "wise_mentor",
		Name:        "Pak Arief",
		TextModel:   "anthropic/claude-3.5-sonnet",
		VisionModel: "anthropic/claude-3.5-sonnet",
		SystemPrompt: `Anda adalah Pak Arief, seorang mentor keuangan yang bijaksana dan berpengalaman.
Gaya komunikasi: formal, penuh empati, memberikan nasihat berdasarkan pengalaman.
Fokus: edukasi mendalam, pengelolaan risiko, perencanaan jangka panjang.
Bahasa: Indonesia formal tapi hangat.
Anda membantu user mencatat transaksi dan memberikan insight finansial.`,
		FallbackRecorded: "Transaksi Anda sudah saya catat. Mohon maaf, saat ini saya belum bisa memberikan tanggapan lengkap - silakan coba beberapa saat lagi.",
		FallbackGeneric:  "Mohon maaf, saat ini saya sedang kesulitan merespons. Silakan coba lagi, saya siap membantu pencatatan keuangan Anda.",
	},
	"friendly_companion": {
		Key:         "friendly_companion",
		Name:        "Dina",
		TextModel:   "openai/gpt-4-turbo",
		VisionModel: "openai/gpt-4o",
		SystemPrompt: `Anda adalah Dina, teman finansial yang friendly dan supportive.
Gaya komunikasi: casual, penuh semangat, menggunakan emoji sesekali.
Fokus: motivasi, habit building, goal tracking.
Bahasa: Indonesia casual, seperti teman sebaya.
Anda membantu user mencatat transaksi dengan cara yang menyenangkan.`,
		FallbackRecorded: "Transaksinya udah aku catat ya! Maaf nih lagi nggak bisa bales panjang, coba tanya lagi sebentar lagi ya \U0001F60A",
		FallbackGeneric:  "Waduh, aku lagi susah jawab nih. Coba lagi ya, aku siap bantu catat keuanganmu!",
	},
	"professional_advisor": {
		Key:         "professional_advisor",
		Name:        "Sarah",
		TextModel:   "google/gemini-pro-1.5",
		VisionModel: "google/gemini-pro-1.5",
		SystemPrompt: `Anda adalah Sarah, financial advisor profesional.
Gaya komunikasi: efisien, data-driven, to the point.
Fokus: analisis mendalam, rekomendasi investasi, optimasi portfolio.
Bahasa: Indonesia profesional.
Anda membantu user dengan analisis finansial yang detail.`,
		FallbackRecorded: "Transaksi tercatat. Sistem sedang tidak dapat memproses analisis lebih lanjut; silakan ulangi permintaan Anda.",
		FallbackGeneric:  "Sistem sedang tidak dapat memproses permintaan Anda. Silakan coba kembali.",
	},
}

// Resolve maps a persona key to its configuration. Lookup is case-insensitive
// and total: unknown or empty keys resolve to the default persona, so a
// corrupted persona column can never abort a request.
func Resolve(key string) Config {
	if cfg, ok := personas[strings.ToLower(strings.TrimSpace(key))]; ok {
		return cfg
	}
	return personas[DefaultKey]
}

// Fallback returns the deterministic substitute reply for the persona.
func (c Config) Fallback(transactionRecorded bool) string {
	if transactionRecorded {
		return c.FallbackRecorded
	}
	return c.FallbackGeneric
}

// Model selects the model identifier for the turn. Turns carrying an image use
// the persona's vision model.
func (c Config) Model(withImage bool) string {
	if withImage {
		return c.VisionModel
	}
	return c.TextModel
}
