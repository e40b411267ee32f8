package msg

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

//go:embed messages.yml
var defaultMessages []byte

var messages map[string]string

// init loads the embedded catalog and overlays MESSAGES_FILE_PATH when it exists
func init() {
	messages = make(map[string]string)
	if err := load(bytes.NewReader(defaultMessages), ""); err != nil {
		log.Fatalf("Fail to read embedded messages: %v", err)
	}

	value, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	if _, err := os.Stat(value); err == nil {
		Init(value)
	}
}

// Init overlays the messages found in filepath on top of the current catalog.
func Init(filepath string) {
	if err := load(nil, filepath); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}
}

func load(reader *bytes.Reader, filepath string) error {
	v := viper.New()
	v.SetConfigType("yml")

	var err error
	if reader != nil {
		err = v.ReadConfig(reader)
	} else {
		v.SetConfigFile(filepath)
		err = v.ReadInConfig()
	}
	if err != nil {
		return err
	}

	parseMessageMap("", v.AllSettings(), messages)
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the message for key with {n} placeholders replaced by args
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	replacements := make([]string, 0, len(args)*2)
	for i, arg := range args {
		replacements = append(replacements, fmt.Sprintf("{%d}", i), argToString(arg))
	}

	return strings.NewReplacer(replacements...).Replace(msg)
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

// primitiveToString converts a primitive value to its shortest string form
func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		// named primitive kinds, e.g. type UnitSystem string
		return fmt.Sprintf("%v", value)
	}
}
