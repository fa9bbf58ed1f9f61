package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unreddit/config"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	method string
	params map[string]string
}

type fakeBotClient struct {
	calls []apiCall
}

func (client *fakeBotClient) RequestWithContext(
	ctx context.Context,
	token string,
	method string,
	params map[string]string,
	data map[string]gotgbot.FileReader,
	opts *gotgbot.RequestOpts,
) (json.RawMessage, error) {
	client.calls = append(client.calls, apiCall{method: method, params: params})
	if method == "answerInlineQuery" {
		return json.RawMessage(`true`), nil
	}
	return json.RawMessage(`{"message_id":11,"date":1,"chat":{"id":99,"type":"private"}}`), nil
}

func (client *fakeBotClient) TimeoutContext(
	opts *gotgbot.RequestOpts,
) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Second)
}

func (client *fakeBotClient) GetAPIURL(opts *gotgbot.RequestOpts) string {
	return gotgbot.DefaultAPIURL
}

func (client *fakeBotClient) FileURL(token string, tgFilePath string, opts *gotgbot.RequestOpts) string {
	return gotgbot.DefaultAPIURL + "/file/bot" + token + "/" + tgFilePath
}

func newTestBot() (*gotgbot.Bot, *fakeBotClient) {
	client := &fakeBotClient{}
	bot := &gotgbot.Bot{
		Token:     "test-token",
		User:      gotgbot.User{Username: "unreddit_bot"},
		BotClient: client,
	}
	return bot, client
}

func textMessage(text string) *gotgbot.Message {
	return &gotgbot.Message{
		MessageId: 5,
		Chat:      gotgbot.Chat{Id: 99, Type: "private"},
		Text:      text,
	}
}

func messageContext(msg *gotgbot.Message) *ext.Context {
	return &ext.Context{
		Update:           &gotgbot.Update{Message: msg},
		EffectiveMessage: msg,
	}
}

// pointRedditAt redirects the reddit API at a local server for the
// duration of the test.
func pointRedditAt(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	old := config.Env.RedditAPIURL
	config.Env.RedditAPIURL = server.URL
	t.Cleanup(func() { config.Env.RedditAPIURL = old })
	return server
}

const imagePostListing = `[
	{"data": {"children": [{"data": {
		"title": "Caaterpillar",
		"author": "lumpiestprincess",
		"subreddit_name_prefixed": "r/ProperAnimalNames",
		"permalink": "/r/ProperAnimalNames/comments/eakgxt/caaterpillar/",
		"url": "https://i.redd.it/x0jro2c32m441.jpg",
		"post_hint": "image",
		"is_reddit_media_domain": true,
		"thumbnail": "default"
	}}]}},
	{"data": {"children": []}}
]`

func TestURLFilter(t *testing.T) {
	link := "https://www.reddit.com/r/pics/comments/abc1/title/"

	assert.True(t, URLFilter(textMessage("look at "+link)))
	assert.False(t, URLFilter(textMessage("no links here")))
	assert.False(t, URLFilter(textMessage("https://example.com/r/pics/comments/abc1/")))

	command := textMessage("/start " + link)
	command.Entities = []gotgbot.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: 6},
	}
	assert.False(t, URLFilter(command))
}

func TestSubsFilter(t *testing.T) {
	assert.True(t, SubsFilter(textMessage("have you seen r/pics")))
	assert.True(t, SubsFilter(textMessage("R/ProperAnimalNames")))
	assert.False(t, SubsFilter(textMessage("https://example.com/bar/pics")))
	assert.False(t, SubsFilter(textMessage("nothing to see")))
}

func TestURLHandlerRepliesWithMedia(t *testing.T) {
	pointRedditAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/ProperAnimalNames/comments/eakgxt/caaterpillar/.json", r.URL.Path)
		w.Write([]byte(imagePostListing))
	}))
	bot, client := newTestBot()
	msg := textMessage("wow https://www.reddit.com/r/ProperAnimalNames/comments/eakgxt/caaterpillar/?share=1")

	err := URLHandler(bot, messageContext(msg))
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, "sendPhoto", call.method)
	assert.Equal(t, "https://i.redd.it/x0jro2c32m441.jpg", call.params["photo"])
	assert.Equal(t, "Caaterpillar", call.params["caption"])
}

func TestURLHandlerSkipsUnresolvableLinks(t *testing.T) {
	pointRedditAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	bot, client := newTestBot()
	msg := textMessage("https://www.reddit.com/r/pics/comments/gone/deleted/")

	err := URLHandler(bot, messageContext(msg))
	require.NoError(t, err)

	assert.Empty(t, client.calls)
}

func TestInlineQueryHandler(t *testing.T) {
	pointRedditAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(imagePostListing))
	}))
	bot, client := newTestBot()
	ctx := &ext.Context{
		Update: &gotgbot.Update{
			InlineQuery: &gotgbot.InlineQuery{
				Id:    "query-1",
				Query: " https://www.reddit.com/r/ProperAnimalNames/comments/eakgxt/caaterpillar/ ",
			},
		},
	}

	err := InlineQueryHandler(bot, ctx)
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, "answerInlineQuery", call.method)
	assert.Contains(t, call.params["results"], "https://i.redd.it/x0jro2c32m441.jpg")
}

func TestSubsHandlerListsOnlyExistingSubs(t *testing.T) {
	pointRedditAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/r/pics.json":
			w.Write([]byte(`{"kind": "Listing"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	bot, client := newTestBot()
	msg := textMessage("r/pics and r/notarealsubatall and r/pics again")

	err := SubsHandler(bot, messageContext(msg))
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, "sendMessage", call.method)
	assert.Equal(t, "[r/pics]("+config.Env.RedditAPIURL+"/r/pics)", call.params["text"])
	assert.Equal(t, gotgbot.ParseModeMarkdown, call.params["parse_mode"])
}
