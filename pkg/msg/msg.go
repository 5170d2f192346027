// Package msg holds the user-facing texts. Messages are YAML trees flattened to dotted keys, with {0}, {1}... placeholders.
package msg

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mutex    sync.RWMutex
	messages = make(map[string]string)
)

// Init merges the messages of a YAML file into the catalog.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	merge(v)
	return nil
}

// Load merges YAML messages read from content into the catalog. Later loads win on duplicate keys.
func Load(content io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(content); err != nil {
		return err
	}
	merge(v)
	return nil
}

func merge(v *viper.Viper) {
	mutex.Lock()
	defer mutex.Unlock()

	for _, key := range v.AllKeys() {
		if text, ok := v.Get(key).(string); ok {
			messages[key] = text
		}
	}
}

// GetMessage returns the message of key with {i} replaced by args[i].
// An unknown key yields "Message not found: <key>".
func GetMessage(key string, args ...any) string {
	mutex.RLock()
	text, ok := messages[key]
	mutex.RUnlock()
	if !ok {
		return "Message not found: " + key
	}

	for i, arg := range args {
		text = strings.ReplaceAll(text, "{"+strconv.Itoa(i)+"}", argString(arg))
	}
	return text
}

func argString(arg any) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	switch reflect.TypeOf(arg).Kind() {
	case reflect.String:
		return reflect.ValueOf(arg).String()
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(arg)
	}

	// maps and structs read better as JSON
	if encoded, err := json.Marshal(arg); err == nil {
		return string(encoded)
	}
	return fmt.Sprintf("%v", arg)
}
