package protocol_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	compile := func(name string) *jsonschema.Schema {
		t.Helper()
		p := filepath.Join("..", "..", "schemas", name)
		s, err := jsonschema.Compile(p)
		if err != nil {
			t.Fatalf("compile %s: %v", name, err)
		}
		return s
	}

	validate := func(s *jsonschema.Schema, v any) {
		t.Helper()
		if err := s.Validate(v); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}

	helloSchema := compile("hello.schema.json")
	welcomeSchema := compile("welcome.schema.json")
	actSchema := compile("act.schema.json")
	ackSchema := compile("ack.schema.json")
	obsSchema := compile("obs.schema.json")

	var hello any
	_ = json.Unmarshal([]byte(`{
	  "type":"HELLO",
	  "protocol_version":"1.0",
	  "client_name":"bot1",
	  "capabilities":{"max_queue":16}
	}`), &hello)
	validate(helloSchema, hello)

	var welcome any
	_ = json.Unmarshal([]byte(`{
	  "type":"WELCOME",
	  "protocol_version":"1.0",
	  "client_id":"C0001",
	  "world_params":{
	    "tick_rate_hz":20,
	    "conveyor_hop_ms":1000,
	    "default_stack_cap":64
	  },
	  "catalogs":{
	    "reactions_digest":"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
	    "stack_caps_digest":"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	  }
	}`), &welcome)
	validate(welcomeSchema, welcome)

	var act any
	_ = json.Unmarshal([]byte(`{
	  "type":"ACT",
	  "protocol_version":"1.0",
	  "intents":[
	    {"id":"I1","type":"PLACE","block_kind":"FURNACE","facing":"NORTH","block_pos":[0,0,0]},
	    {"id":"I2","type":"SET_REACTION","block_id":"B000001","reaction_id":"PROCESS_IRON_TO_GOLD"},
	    {"id":"I3","type":"PUSH_ITEM","block_id":"B000001","role":"input","item":"IRON_SOLID","qty":3},
	    {"id":"I4","type":"DESELECT_ALL"}
	  ]
	}`), &act)
	validate(actSchema, act)

	var ack any
	_ = json.Unmarshal([]byte(`{
	  "type":"ACK",
	  "protocol_version":"1.0",
	  "ack_for":"I1",
	  "accepted":false,
	  "code":"E_BLOCKED",
	  "message":"cell occupied",
	  "server_tick":42
	}`), &ack)
	validate(ackSchema, ack)

	var obs any
	_ = json.Unmarshal([]byte(`{
	  "type":"OBS",
	  "protocol_version":"1.0",
	  "tick":42,
	  "events":[
	    {"type":"BLOCK_PLACED","block_id":"B000001","kind":"FURNACE","facing":"NORTH","pos":[0,0,0],"by":"C0001"},
	    {"type":"TRANSFER","by":"B000003","from":"B000001","to":"B000002","item":"IRON_SOLID","qty":1}
	  ],
	  "digest":"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	}`), &obs)
	validate(obsSchema, obs)
}

func TestSchemas_RejectBadMessages(t *testing.T) {
	compile := func(name string) *jsonschema.Schema {
		t.Helper()
		s, err := jsonschema.Compile(filepath.Join("..", "..", "schemas", name))
		if err != nil {
			t.Fatalf("compile %s: %v", name, err)
		}
		return s
	}
	reject := func(s *jsonschema.Schema, raw string) {
		t.Helper()
		var v any
		_ = json.Unmarshal([]byte(raw), &v)
		if err := s.Validate(v); err == nil {
			t.Fatalf("expected validation error for %s", raw)
		}
	}

	reject(compile("hello.schema.json"), `{"type":"HELLO","protocol_version":"1.0"}`)
	reject(compile("act.schema.json"), `{
	  "type":"ACT","protocol_version":"1.0",
	  "intents":[{"id":"I1","type":"TELEPORT"}]
	}`)
	reject(compile("act.schema.json"), `{
	  "type":"ACT","protocol_version":"1.0",
	  "intents":[{"id":"I1","type":"PUSH_ITEM","block_id":"B000001","role":"input","item":"IRON_SOLID","qty":100000}]
	}`)
	reject(compile("ack.schema.json"), `{
	  "type":"ACK","protocol_version":"1.0",
	  "ack_for":"I1","accepted":false,"code":"E_MADE_UP"
	}`)
}
