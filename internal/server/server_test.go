package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/averycrespi/mathline/internal/calc"
	"github.com/averycrespi/mathline/internal/vars"
	"github.com/averycrespi/mathline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MCPRequest represents a JSON-RPC 2.0 request
type MCPRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// MCPResponse represents a JSON-RPC 2.0 response
type MCPResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *MCPError       `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC 2.0 error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// toolCallResult is the subset of a tools/call result the tests inspect
type toolCallResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

// testSession drives an in-process server over pipes
type testSession struct {
	stdin   io.WriteCloser
	scanner *bufio.Scanner
	cancel  context.CancelFunc
	done    chan error
	nextID  int
}

func startSession(t *testing.T) *testSession {
	t.Helper()

	engine := calc.New(vars.NewStore(), time.Second)
	srv := NewMathServer(engine, &types.Config{SolveTimeout: time.Second})

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())

	s := &testSession{
		stdin:   inW,
		scanner: bufio.NewScanner(outR),
		cancel:  cancel,
		done:    make(chan error, 1),
		nextID:  1,
	}
	go func() {
		s.done <- srv.Listen(ctx, inR, outW)
		outW.Close()
	}()

	t.Cleanup(func() {
		cancel()
		inW.Close()
		select {
		case <-s.done:
		case <-time.After(5 * time.Second):
			t.Errorf("server did not stop")
		}
	})
	return s
}

// sendRequest sends a JSON-RPC request and waits for its response
func (s *testSession) sendRequest(t *testing.T, method string, params interface{}) MCPResponse {
	t.Helper()

	req := MCPRequest{JSONRPC: "2.0", ID: s.nextID, Method: method, Params: params}
	s.nextID++

	reqJSON, err := json.Marshal(req)
	require.NoError(t, err)
	t.Logf("Sending request: %s", string(reqJSON))

	if _, err := s.stdin.Write(append(reqJSON, '\n')); err != nil {
		t.Fatalf("Failed to write request: %v", err)
	}

	done := make(chan MCPResponse, 1)
	errChan := make(chan error, 1)
	go func() {
		if s.scanner.Scan() {
			line := s.scanner.Text()
			var resp MCPResponse
			if err := json.Unmarshal([]byte(line), &resp); err != nil {
				errChan <- fmt.Errorf("failed to unmarshal response: %v", err)
				return
			}
			done <- resp
			return
		}
		errChan <- fmt.Errorf("scanner stopped: %v", s.scanner.Err())
	}()

	select {
	case resp := <-done:
		return resp
	case err := <-errChan:
		t.Fatalf("Error reading response: %v", err)
	case <-time.After(10 * time.Second):
		t.Fatalf("Timeout waiting for response")
	}
	return MCPResponse{}
}

func (s *testSession) initialize(t *testing.T) {
	resp := s.sendRequest(t, "initialize", map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"clientInfo": map[string]interface{}{
			"name":    "integration-test",
			"version": "1.0.0",
		},
	})
	require.Nil(t, resp.Error, "initialize failed")
}

func (s *testSession) callTool(t *testing.T, name string, arguments map[string]interface{}) toolCallResult {
	t.Helper()
	resp := s.sendRequest(t, "tools/call", map[string]interface{}{
		"name":      name,
		"arguments": arguments,
	})
	require.Nil(t, resp.Error, "tools/call %s failed", name)

	var result toolCallResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	return result
}

func TestMCPServerIntegration(t *testing.T) {
	s := startSession(t)
	s.initialize(t)

	t.Run("ListTools", func(t *testing.T) {
		resp := s.sendRequest(t, "tools/list", nil)
		require.Nil(t, resp.Error)

		var result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		}
		require.NoError(t, json.Unmarshal(resp.Result, &result))

		var names []string
		for _, tool := range result.Tools {
			names = append(names, tool.Name)
		}
		assert.ElementsMatch(t, []string{
			"calculate",
			"solve_equation",
			"set_variable",
			"list_variables",
			"normalize_expression",
		}, names)
	})

	t.Run("Calculate", func(t *testing.T) {
		result := s.callTool(t, "calculate", map[string]interface{}{"expression": "1/2 + 1/3"})
		assert.False(t, result.IsError)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &payload))
		assert.Equal(t, "5/6", payload["result"])
		assert.Equal(t, "rational", payload["value_kind"])
	})

	t.Run("CalculateError", func(t *testing.T) {
		result := s.callTool(t, "calculate", map[string]interface{}{"expression": "1/0"})
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content[0].Text, "Invalid - Division by zero")
	})

	t.Run("VariablesAndEquations", func(t *testing.T) {
		result := s.callTool(t, "set_variable", map[string]interface{}{"name": "k", "value": "3"})
		assert.False(t, result.IsError)

		result = s.callTool(t, "solve_equation", map[string]interface{}{"equation": "x*k+1=7"})
		assert.False(t, result.IsError)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &payload))
		assert.Equal(t, "x = 2", payload["message"])

		result = s.callTool(t, "list_variables", map[string]interface{}{})
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &payload))
		assert.Equal(t, float64(1), payload["count"])
	})

	t.Run("UnknownTool", func(t *testing.T) {
		resp := s.sendRequest(t, "tools/call", map[string]interface{}{
			"name":      "does_not_exist",
			"arguments": map[string]interface{}{},
		})
		assert.NotNil(t, resp.Error)
	})
}
