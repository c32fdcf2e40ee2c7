package bland

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendCall(t *testing.T) {
	t.Run("requires phone number", func(t *testing.T) {
		c := New(DefaultBaseURL, WithToken("tok"))
		_, err := c.SendCall(context.Background(), SendCallParams{Task: "hi"})
		var missing *MissingFieldError
		if !errors.As(err, &missing) || missing.Field != "phone_number" {
			t.Fatalf("err = %v, want MissingFieldError{phone_number}", err)
		}
	})

	t.Run("requires task or pathway", func(t *testing.T) {
		c := New(DefaultBaseURL, WithToken("tok"))
		_, err := c.SendCall(context.Background(), SendCallParams{PhoneNumber: "+12025550101"})
		var oneOf *MissingOneOfError
		if !errors.As(err, &oneOf) {
			t.Fatalf("err = %v, want MissingOneOfError", err)
		}
	})

	t.Run("rejects malformed phone", func(t *testing.T) {
		c := New(DefaultBaseURL, WithToken("tok"))
		_, err := c.SendCall(context.Background(), SendCallParams{PhoneNumber: "12025550101", Task: "hi"})
		var phoneErr *InvalidPhoneError
		if !errors.As(err, &phoneErr) {
			t.Fatalf("err = %v, want InvalidPhoneError", err)
		}
	})

	t.Run("rejects out-of-range temperature", func(t *testing.T) {
		c := New(DefaultBaseURL, WithToken("tok"))
		temp := 1.5
		_, err := c.SendCall(context.Background(), SendCallParams{
			PhoneNumber: "+12025550101",
			Task:        "hi",
			Temperature: &temp,
		})
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) || rangeErr.Field != "temperature" {
			t.Fatalf("err = %v, want RangeError{temperature}", err)
		}
	})

	t.Run("rejects unknown model", func(t *testing.T) {
		c := New(DefaultBaseURL, WithToken("tok"))
		_, err := c.SendCall(context.Background(), SendCallParams{
			PhoneNumber: "+12025550101",
			Task:        "hi",
			Model:       "ultra",
		})
		var enumErr *InvalidEnumError
		if !errors.As(err, &enumErr) {
			t.Fatalf("err = %v, want InvalidEnumError", err)
		}
	})

	t.Run("applies defaults and normalizes phone", func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &body)
			io.WriteString(w, `{"status":"success","call_id":"c1"}`)
		}))
		defer srv.Close()

		c := New(srv.URL, WithToken("tok"), WithDefaults(Defaults{
			Model:                 "enhanced",
			Voice:                 "mason",
			Language:              "en-US",
			MaxDuration:           30,
			Temperature:           0.7,
			InterruptionThreshold: 100,
			Limit:                 1000,
		}))
		resp, err := c.SendCall(context.Background(), SendCallParams{
			PhoneNumber: "+1 (202) 555-0101",
			Task:        "book a table",
		})
		if err != nil {
			t.Fatal(err)
		}
		if resp.CallID != "c1" {
			t.Errorf("CallID = %q", resp.CallID)
		}

		if body["phone_number"] != "+12025550101" {
			t.Errorf("phone_number = %v", body["phone_number"])
		}
		if body["model"] != "enhanced" {
			t.Errorf("model = %v", body["model"])
		}
		if body["voice"] != "mason" {
			t.Errorf("voice = %v", body["voice"])
		}
		if body["temperature"] != 0.7 {
			t.Errorf("temperature = %v", body["temperature"])
		}
		if body["max_duration"] != float64(30) {
			t.Errorf("max_duration = %v", body["max_duration"])
		}
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &body)
			io.WriteString(w, `{"status":"success","call_id":"c2"}`)
		}))
		defer srv.Close()

		c := New(srv.URL, WithToken("tok"), WithDefaults(Defaults{Model: "enhanced", Temperature: 0.7}))
		temp := 0.3
		_, err := c.SendCall(context.Background(), SendCallParams{
			PhoneNumber: "+12025550101",
			Task:        "hi",
			Model:       "turbo",
			Temperature: &temp,
		})
		if err != nil {
			t.Fatal(err)
		}
		if body["model"] != "turbo" {
			t.Errorf("model = %v", body["model"])
		}
		if body["temperature"] != 0.3 {
			t.Errorf("temperature = %v", body["temperature"])
		}
	})

	t.Run("explicit zero temperature is kept", func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &body)
			io.WriteString(w, `{"status":"success","call_id":"c3"}`)
		}))
		defer srv.Close()

		c := New(srv.URL, WithToken("tok"), WithDefaults(Defaults{Temperature: 0.7, MaxDuration: 30}))
		temp := 0.0
		dur := 0
		_, err := c.SendCall(context.Background(), SendCallParams{
			PhoneNumber: "+12025550101",
			Task:        "hi",
			Temperature: &temp,
			MaxDuration: &dur,
		})
		if err != nil {
			t.Fatal(err)
		}
		if body["temperature"] != 0.0 {
			t.Errorf("temperature = %v, want explicit 0", body["temperature"])
		}
		if body["max_duration"] != 0.0 {
			t.Errorf("max_duration = %v, want explicit 0", body["max_duration"])
		}
	})
}

func TestSendCallSimple(t *testing.T) {
	t.Run("minimal payload", func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &body)
			io.WriteString(w, `{"status":"success","call_id":"c1"}`)
		}))
		defer srv.Close()

		c := New(srv.URL, WithToken("tok"))
		_, err := c.SendCallSimple(context.Background(), "+12025550101", "say hello")
		if err != nil {
			t.Fatal(err)
		}
		if len(body) != 2 {
			t.Errorf("body = %v, want only phone_number and task", body)
		}
		if body["task"] != "say hello" {
			t.Errorf("task = %v", body["task"])
		}
	})

	t.Run("requires task", func(t *testing.T) {
		c := New(DefaultBaseURL, WithToken("tok"))
		_, err := c.SendCallSimple(context.Background(), "+12025550101", "")
		var missing *MissingFieldError
		if !errors.As(err, &missing) || missing.Field != "task" {
			t.Fatalf("err = %v, want MissingFieldError{task}", err)
		}
	})
}

func TestAnalyzeCall(t *testing.T) {
	t.Run("requires goal and questions", func(t *testing.T) {
		c := New(DefaultBaseURL, WithToken("tok"))
		if _, err := c.AnalyzeCall(context.Background(), "c1", AnalyzeCallParams{Questions: [][]string{{"q"}}}); err == nil {
			t.Error("expected error for missing goal")
		}
		if _, err := c.AnalyzeCall(context.Background(), "c1", AnalyzeCallParams{Goal: "qa"}); err == nil {
			t.Error("expected error for missing questions")
		}
	})

	t.Run("posts goal and questions", func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/calls/c1/analyze" {
				t.Errorf("path = %q", r.URL.Path)
			}
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &body)
			io.WriteString(w, `{"status":"success","answers":["yes"],"credits_used":0.5}`)
		}))
		defer srv.Close()

		c := New(srv.URL, WithToken("tok"))
		resp, err := c.AnalyzeCall(context.Background(), "c1", AnalyzeCallParams{
			Goal:      "quality check",
			Questions: [][]string{{"was the goal met?", "boolean"}},
		})
		if err != nil {
			t.Fatal(err)
		}
		if body["goal"] != "quality check" {
			t.Errorf("goal = %v", body["goal"])
		}
		if len(resp.Answers) != 1 {
			t.Errorf("Answers = %v", resp.Answers)
		}
	})
}
