// Seeder drives the circle-service HTTP API with demo data: two users,
// one circle, a post, a like and a comment. Useful for smoke-testing a
// compose environment by hand.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = func() string {
	if u := os.Getenv("CIRCLE_SERVICE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080"
}()

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	// Two users: the circle creator and a joiner.
	creatorEmail := gofakeit.Email()
	joinerEmail := gofakeit.Email()
	register(creatorEmail, "123456", gofakeit.Name())
	register(joinerEmail, "123456", gofakeit.Name())

	creatorTok := login(creatorEmail, "123456")
	joinerTok := login(joinerEmail, "123456")
	if creatorTok == "" || joinerTok == "" {
		log.Fatal("could not obtain tokens, aborting seeding process")
	}

	circleID, inviteCode := createCircle(creatorTok, gofakeit.Word()+" circle", gofakeit.Sentence(6))
	joinCircle(joinerTok, inviteCode)

	postID := createPost(creatorTok, circleID, gofakeit.HipsterSentence(8))
	getFeed(joinerTok, circleID)
	toggleLike(joinerTok, postID)
	addComment(joinerTok, postID, gofakeit.Sentence(5))
	listCircles(creatorTok)
}

func register(email, password, name string) {
	payload := map[string]string{"email": email, "password": password, "name": name}
	data, _ := json.Marshal(payload)
	resp, err := http.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Println("register:", err)
		return
	}
	defer resp.Body.Close()
	log.Printf("register %s status: %s", email, resp.Status)
}

func login(email, password string) string {
	payload := map[string]string{"email": email, "password": password}
	data, _ := json.Marshal(payload)
	resp, err := http.Post(baseURL+"/auth/login", "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Println("login:", err)
		return ""
	}
	defer resp.Body.Close()
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	token, _ := result["token"].(string)
	log.Printf("login %s status: %s", email, resp.Status)
	return token
}

func authedJSON(method, url, token string, payload any) map[string]any {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("%s %s: %v", method, url, err)
		return nil
	}
	defer resp.Body.Close()
	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	log.Printf("%s %s status: %s", method, url, resp.Status)
	return result
}

func createCircle(token, name, description string) (uint64, string) {
	result := authedJSON("POST", baseURL+"/circles", token, map[string]string{
		"name": name, "description": description,
	})
	if result == nil {
		log.Fatal("createCircle failed")
	}
	id, _ := result["id"].(float64)
	code, _ := result["invite_code"].(string)
	return uint64(id), code
}

func joinCircle(token, inviteCode string) {
	authedJSON("POST", baseURL+"/circles/join/"+inviteCode, token, nil)
}

func createPost(token string, circleID uint64, content string) uint64 {
	result := authedJSON("POST", baseURL+"/posts", token, map[string]any{
		"circle_id": circleID, "content": content, "image_url": gofakeit.ImageURL(640, 480),
	})
	if result == nil {
		log.Fatal("createPost failed")
	}
	id, _ := result["id"].(float64)
	return uint64(id)
}

func getFeed(token string, circleID uint64) {
	authedJSON("GET", fmt.Sprintf("%s/circles/%d/feed", baseURL, circleID), token, nil)
}

func toggleLike(token string, postID uint64) {
	authedJSON("POST", fmt.Sprintf("%s/posts/%d/like", baseURL, postID), token, nil)
}

func addComment(token string, postID uint64, content string) {
	authedJSON("POST", fmt.Sprintf("%s/posts/%d/comment", baseURL, postID), token, map[string]string{
		"content": content,
	})
}

func listCircles(token string) {
	authedJSON("GET", baseURL+"/circles/my-circles", token, nil)
}
