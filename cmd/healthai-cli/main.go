package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"healthai/pkg"
)

var (
	baseURL = "http://localhost:8080"
	reader  = bufio.NewReader(os.Stdin)
	// the simulated generator alone waits 2s; real models take much longer
	client = &http.Client{Timeout: 5 * time.Minute}
)

func main() {
	if u := os.Getenv("HEALTHAI_URL"); u != "" {
		baseURL = strings.TrimSuffix(u, "/")
	}
	fmt.Println("Welcome to HealthAI CLI")
	for {
		printMenu()
	}
}

func printMenu() {
	fmt.Println("\n=== HealthAI ===")
	fmt.Println("1. Ask a health question")
	fmt.Println("2. Analyze symptoms")
	fmt.Println("3. Treatment plan")
	fmt.Println("4. BMI calculator")
	fmt.Println("5. Exit")

	switch prompt("> ") {
	case "1":
		respond("chat", pkg.RespondRequest{Question: prompt("Your health question: ")})
	case "2":
		respond("symptoms", pkg.RespondRequest{Symptoms: prompt("Describe your symptoms: ")})
	case "3":
		req := pkg.RespondRequest{Condition: prompt("Medical condition: ")}
		req.Age = promptInt("Age: ")
		req.Gender = prompt("Gender (Male/Female/Other/Prefer not to say): ")
		req.History = prompt("Medical history: ")
		respond("treatment", req)
	case "4":
		height := promptNumber("Height (cm): ")
		weight := promptNumber("Weight (kg): ")
		bmi(pkg.BMIRequest{HeightCm: height, WeightKg: weight})
	case "5":
		fmt.Println("Goodbye!")
		os.Exit(0)
	default:
		fmt.Println("Invalid choice")
	}
}

func prompt(label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

// promptNumber asks until the answer parses as a finite number.
func promptNumber(label string) float64 {
	for {
		v, err := strconv.ParseFloat(prompt(label), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
		fmt.Println("Invalid number")
	}
}

func promptInt(label string) int {
	for {
		v, err := strconv.Atoi(prompt(label))
		if err == nil {
			return v
		}
		fmt.Println("Invalid number")
	}
}

func respond(mode string, req pkg.RespondRequest) {
	fmt.Println("Waiting for HealthAI...")
	var resp pkg.RespondResponse
	if err := post("/api/"+mode, req, &resp); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println()
	fmt.Println(resp.Response)
	for _, g := range resp.Guidance {
		fmt.Println("  -", g)
	}
}

func bmi(req pkg.BMIRequest) {
	var resp pkg.BMIResponse
	if err := post("/api/bmi", req, &resp); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("BMI: %.1f\nCategory: %s\n", resp.BMI, resp.Category)
}

func post(path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
