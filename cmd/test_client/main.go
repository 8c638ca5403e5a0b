package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultEndpoint = "http://localhost:8080/mcp/stream"

	testRole   = "Software Engineer"
	testSalary = "140k-200k"
)

func main() {
	ctx := context.Background()

	endpoint := os.Getenv("MCP_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "career-hunter-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testJobSearch(ctx, session)
	testInvalidSalary(ctx, session)
	testCacheClear(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
}

func testJobSearch(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: job_search")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "job_search",
		Arguments: map[string]any{
			"role":      testRole,
			"salary":    testSalary,
			"work_type": "all",
			"limit":     5,
		},
	})
	if err != nil {
		log.Printf("job_search failed: %v", err)
		return
	}
	printResult(result)
}

func testInvalidSalary(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: job_search with invalid salary")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "job_search",
		Arguments: map[string]any{
			"role":   testRole,
			"salary": "lots",
		},
	})
	if err != nil {
		log.Printf("job_search failed: %v", err)
		return
	}
	if !result.IsError {
		log.Printf("expected a tool error for an invalid salary")
	}
	printResult(result)
}

func testCacheClear(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: cache_clear")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "cache_clear",
		Arguments: map[string]any{},
	})
	if err != nil {
		log.Printf("cache_clear failed: %v", err)
		return
	}
	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	for _, c := range result.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			fmt.Printf("  text: %s\n", text.Text)
		}
	}
	if result.StructuredContent != nil {
		data, err := json.MarshalIndent(result.StructuredContent, "  ", "  ")
		if err == nil {
			fmt.Printf("  structured: %s\n", data)
		}
	}
}
