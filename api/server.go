package api

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/simantaparida/featurevote/api/controllers"
	"github.com/simantaparida/featurevote/api/transport"
	"github.com/simantaparida/featurevote/logging"
	"github.com/simantaparida/featurevote/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	sessionStorage, playerStorage, featureStorage, voteStorage := s.buildStorage()

	//Register controllers
	sessionController := controllers.NewSessionController(sessionStorage, playerStorage, featureStorage)
	sessionController.RegisterRoutes(r)
	votingController := controllers.NewVotingController(sessionStorage, playerStorage, featureStorage, voteStorage)
	votingController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) buildStorage() (storage.SessionStorage, storage.PlayerStorage, storage.FeatureStorage, storage.VoteStorage) {
	if s.config.Driver == "memory" {
		logging.Log.Info("Using in-memory storage driver")
		return storage.NewMemorySessionStorage(),
			storage.NewMemoryPlayerStorage(),
			storage.NewMemoryFeatureStorage(),
			storage.NewMemoryVoteStorage()
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}
	dynamoClient := dynamodb.NewFromConfig(cfg)

	return &storage.DynamoSessionStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameSessions,
			Timeout:   s.config.Timeout,
		}, &storage.DynamoPlayerStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNamePlayers,
			Timeout:   s.config.Timeout,
		}, &storage.DynamoFeatureStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameFeatures,
			Timeout:   s.config.Timeout,
		}, &storage.DynamoVoteStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameVotes,
			Timeout:   s.config.Timeout,
		}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
