package timecoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

func (c *DefaultClient) getResource(ctx context.Context, result interface{}, path string, query url.Values) error {
	u := *c.Base
	u.Path = u.Path + path
	u.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req = req.WithContext(ctx)

	resp, err := c.Client.Do(req)
	if err != nil {
		return errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "reading error response")
		}

		return fmt.Errorf("recieved a non 2xx status response, got a %s with body %q", resp.Status, string(b))
	}

	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return errors.Wrap(err, "decoding response")
	}

	return nil
}
