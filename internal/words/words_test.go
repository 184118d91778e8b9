package words_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Embers-of-the-Fire/serenum/internal/words"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"getId", []string{"get", "Id"}},
		{"GetId", []string{"Get", "Id"}},
		{"getID", []string{"get", "ID"}},
		{"JSONParser", []string{"JSON", "Parser"}},
		{"send_message", []string{"send", "_", "message"}},
		{"send__nowait", []string{"send", "__", "nowait"}},
		{"iso8601", []string{"iso", "8601"}},
		{"file2name", []string{"file", "2", "name"}},
		{"version2Point1", []string{"version", "2", "Point", "1"}},
		{"hello", []string{"hello"}},
		{"HELLO", []string{"HELLO"}},
		{"___", []string{"___"}},
		{"12345", []string{"12345"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, words.Split(tt.input))
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "", words.CommonPrefix(nil))
	assert.Equal(t, "abc", words.CommonPrefix([]string{"abc"}))
	assert.Equal(t, "ab", words.CommonPrefix([]string{"abc", "abd", "ab"}))
	assert.Equal(t, "", words.CommonPrefix([]string{"abc", "xyz"}))
	assert.Equal(t, "StatusA", words.CommonPrefix([]string{"StatusActive", "StatusArchived"}))
	assert.Equal(t, "안", words.CommonPrefix([]string{"안경", "안돼", "안녕"}))
	// Ä and Ö share their first byte.
	assert.Equal(t, "", words.CommonPrefix([]string{"Ärger", "Öl"}))
}

func TestCommonSuffix(t *testing.T) {
	assert.Equal(t, "", words.CommonSuffix(nil))
	assert.Equal(t, "ing", words.CommonSuffix([]string{"running", "walking", "swimming"}))
	assert.Equal(t, "", words.CommonSuffix([]string{"abc", "xyz"}))
	assert.Equal(t, "ür", words.CommonSuffix([]string{"Tür", "Für"}))
	// é and © share their last byte.
	assert.Equal(t, "", words.CommonSuffix([]string{"Café", "Copy©"}))
}

func TestCommonWordPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"Empty", nil, ""},
		{"Single", []string{"StatusActive"}, "StatusActive"},
		{"Shared", []string{"StatusActive", "StatusArchived"}, "Status"},
		{"SharedChars", []string{"StatusActive", "StatusArchived", "Stat"}, ""},
		{"Acronym", []string{"HTTPGet", "HTTPPost"}, "HTTP"},
		{"Underscore", []string{"order_full", "order_half"}, "order_"},
		{"None", []string{"Full", "Half"}, ""},
		{"WholeName", []string{"Status", "StatusActive"}, "Status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, words.CommonWordPrefix(tt.input))
		})
	}
}

func TestCommonWordSuffix(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"Empty", nil, ""},
		{"Shared", []string{"FullOrder", "HalfOrder"}, "Order"},
		{"SharedChars", []string{"FullOrder", "HalfBorder"}, ""},
		{"Digits", []string{"Level1", "Stage1"}, "1"},
		{"Underscore", []string{"full_order", "half_order"}, "_order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, words.CommonWordSuffix(tt.input))
		})
	}
}

func TestCase(t *testing.T) {
	tests := []struct {
		input, snake, kebab, upperSnake string
	}{
		{"InProgress", "in_progress", "in-progress", "IN_PROGRESS"},
		{"Full", "full", "full", "FULL"},
		{"HTTPStatus", "http_status", "http-status", "HTTP_STATUS"},
		{"already_snake", "already_snake", "already-snake", "ALREADY_SNAKE"},
		{"Version2", "version_2", "version-2", "VERSION_2"},
		{"getID", "get_id", "get-id", "GET_ID"},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.snake, words.Snake(tt.input))
			assert.Equal(t, tt.kebab, words.Kebab(tt.input))
			assert.Equal(t, tt.upperSnake, words.UpperSnake(tt.input))
		})
	}
}

func TestLowerCamel(t *testing.T) {
	assert.Equal(t, "order", words.LowerCamel("Order"))
	assert.Equal(t, "httpMethod", words.LowerCamel("HTTPMethod"))
	assert.Equal(t, "order", words.LowerCamel("order"))
	assert.Equal(t, "", words.LowerCamel(""))
}
