package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/contacts -timeout=1m
func main() {
	url := flag.String("url", "http://localhost:8080/contacts", "the endpoint to poll")
	timeout := flag.Duration("timeout", 2*time.Minute, "give up after this long")
	interval := flag.Duration("interval", 5*time.Second, "time between two attempts")
	flag.Parse()

	if !waitUntilAvailable(*url, *timeout, *interval) {
		log.Printf("%s not available after %s", *url, *timeout)
		os.Exit(1)
	}
}

// waitUntilAvailable polls the URL until the service answers. An empty contacts table answers
// with NOT FOUND, which still means the service is up.
func waitUntilAvailable(url string, timeout time.Duration, interval time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		res, err := http.Get(url)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK || res.StatusCode == http.StatusNotFound {
				log.Printf("%s answered with %s", url, res.Status)
				return true
			}
			log.Printf("%s answered with %s", url, res.Status)
		} else {
			log.Println(err)
		}
		if time.Now().Add(interval).After(deadline) {
			return false
		}
		log.Printf("waiting %s", interval)
		time.Sleep(interval)
	}
}
