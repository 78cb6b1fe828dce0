package testioc

import (
	"github.com/olivere/elastic/v7"
)

var es *elastic.Client

func InitES() *elastic.Client {
	if es != nil {
		return es
	}
	client, err := elastic.NewClient(
		elastic.SetURL("http://localhost:9200"),
		elastic.SetSniff(false),
	)
	if err != nil {
		panic(err)
	}
	es = client
	return es
}
