package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"gitlab.com/dirk.krummacker/contactmgr/internal/model"
)

// Usage example on the command line, with the service running:
// > go run main.go -url=http://localhost:8080
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the contacts service")
	flag.Parse()

	fmt.Println()
	fmt.Println("  Elements      POST       GET    DELETE ")
	fmt.Println("-----------------------------------------")
	sizes := []int{100, 500, 1000, 5000}
	jsonBody, err := json.Marshal(model.Contact{
		FirstName: "Jackie",
		LastName:  "Samyn",
		Email:     "jackie@gmail.com",
		Phone:     2197767123,
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, loops := range sizes {
		fmt.Printf("%10d", loops)
		ids := make([]int64, 0, loops)
		var duration time.Duration
		for i := 0; i < loops; i++ {
			id, d := sendPostRequest(*baseURL, bytes.NewReader(jsonBody))
			ids = append(ids, id)
			duration += d
		}
		fmt.Printf("%10d", duration.Microseconds()/int64(loops))
		callInLoop(ids, func(id int64) time.Duration {
			return sendGetDeleteRequest(*baseURL, id, http.MethodGet)
		})
		callInLoop(ids, func(id int64) time.Duration {
			return sendGetDeleteRequest(*baseURL, id, http.MethodDelete)
		})
		fmt.Println()
	}
}

// callInLoop calls f for every id in random order and prints the average duration in
// microseconds.
func callInLoop(ids []int64, f func(id int64) time.Duration) {
	shuffled := append([]int64(nil), ids...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	var duration time.Duration
	for _, id := range shuffled {
		duration += f(id)
	}
	fmt.Printf("%10d", duration.Microseconds()/int64(len(ids)))
}

func sendPostRequest(baseURL string, bodyReader io.Reader) (int64, time.Duration) {
	resBody, duration := sendRequest(http.MethodPost, baseURL+"/contacts", bodyReader)
	var contact model.Contact
	if err := json.Unmarshal(resBody, &contact); err != nil {
		log.Fatalln("could not unmarshal JSON", err)
	}
	return contact.Id, duration
}

func sendGetDeleteRequest(baseURL string, id int64, method string) time.Duration {
	_, duration := sendRequest(method, fmt.Sprintf("%s/contacts/%d", baseURL, id), nil)
	return duration
}

func sendRequest(method string, requestURL string, bodyReader io.Reader) ([]byte, time.Duration) {
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		log.Fatalln("could not create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	before := time.Now()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalln("error making http request", err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatalln("could not read response body", err)
	}
	return resBody, time.Since(before)
}
